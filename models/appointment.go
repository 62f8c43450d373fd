package models

import "time"

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled" // range-based bookings
	AppointmentStatusBooked    AppointmentStatus = "booked"    // slot-based bookings
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// ActiveStatuses are the statuses that still occupy their time slot.
// Cancellation is a soft delete, so a cancelled record never blocks rebooking.
var ActiveStatuses = []AppointmentStatus{AppointmentStatusScheduled, AppointmentStatusBooked}

// Active reports whether the appointment still occupies its slot.
func (s AppointmentStatus) Active() bool {
	return s != AppointmentStatusCancelled
}

// Appointment is a single appointment document. Both booking shapes write the
// same record: range-based callers supply start/end and the slot fields are
// derived from them, slot-based callers supply dateKey/timeSlot and the range
// is derived from the provider's slot length.
type Appointment struct {
	ID           string            `bson:"id" json:"id"`
	PatientID    string            `bson:"patientId,omitempty" json:"patientId,omitempty"`
	PatientName  string            `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone        string            `bson:"phone,omitempty" json:"phone,omitempty"`
	ProviderID   string            `bson:"providerId,omitempty" json:"providerId,omitempty"`
	ProviderName string            `bson:"providerName,omitempty" json:"providerName,omitempty"`
	StartTime    time.Time         `bson:"startTime" json:"startTime"`
	EndTime      time.Time         `bson:"endTime" json:"endTime"`
	DateKey      string            `bson:"dateKey" json:"dateKey"`   // "YYYY-MM-DD"
	TimeSlot     string            `bson:"timeSlot" json:"timeSlot"` // normalized label, e.g. "9:00am"
	Reason       string            `bson:"reason,omitempty" json:"reason,omitempty"`
	Status       AppointmentStatus `bson:"status" json:"status"`
	CreatedBy    string            `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt    time.Time         `bson:"createdAt" json:"createdAt"`
}

// CreateAppointmentInput is the structured booking request.
type CreateAppointmentInput struct {
	PatientID    string    `json:"patientId" binding:"required"`
	ProviderID   string    `json:"providerId" binding:"required"`
	ProviderName string    `json:"providerName,omitempty"`
	StartTime    time.Time `json:"startTime" binding:"required"`
	EndTime      time.Time `json:"endTime" binding:"required"`
	Reason       string    `json:"reason,omitempty"`
}

// UpdateAppointmentInput carries a partial update; nil fields are left untouched.
type UpdateAppointmentInput struct {
	StartTime *time.Time         `json:"startTime,omitempty"`
	EndTime   *time.Time         `json:"endTime,omitempty"`
	Reason    *string            `json:"reason,omitempty"`
	Status    *AppointmentStatus `json:"status,omitempty"`
}

// SimpleAppointmentInput is the form-based booking request from the patient app.
type SimpleAppointmentInput struct {
	PatientName  string `json:"patientName" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	ProviderName string `json:"providerName" binding:"required"`
	Date         string `json:"date" binding:"required"`     // "YYYY-MM-DD" or "MM/DD/YYYY"
	TimeSlot     string `json:"timeSlot" binding:"required"` // e.g. "10:30 AM"
}
