package models

import "time"

type AuditAction string

const (
	AuditActionCreated  AuditAction = "created"
	AuditActionUpdated  AuditAction = "updated"
	AuditActionCanceled AuditAction = "canceled"
)

// AuditLogEntry records one mutating scheduling operation. Entries are
// append-only and never read back by the service.
type AuditLogEntry struct {
	ID            string      `bson:"id" json:"id"`
	UserID        string      `bson:"userId" json:"userId"`
	Action        AuditAction `bson:"action" json:"action"`
	AppointmentID string      `bson:"appointmentId" json:"appointmentId"`
	Timestamp     time.Time   `bson:"timestamp" json:"timestamp"`
}
