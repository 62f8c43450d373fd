package scheduling

import (
	"context"
	"time"

	"occlusa/models"
)

// SchedulingService is the appointment scheduling engine: conflict detection,
// slot availability and appointment lifecycle against a provider's work
// calendar. Expected failures (permission, validation, conflict, not-found)
// are the typed errors in errors.go; everything else is infrastructure.
type SchedulingService interface {
	// CreateAppointment books a time range for a provider on behalf of an
	// admin or front-desk user, then returns the persisted record.
	CreateAppointment(ctx context.Context, input models.CreateAppointmentInput, userCtx models.UserContext) (*models.Appointment, error)
	// UpdateAppointment applies a partial update, re-checking conflicts when
	// either time bound changed. The appointment never conflicts with itself.
	UpdateAppointment(ctx context.Context, id string, updates models.UpdateAppointmentInput, userCtx models.UserContext) (*models.Appointment, error)
	// CancelAppointment soft-deletes: the record stays with status cancelled.
	// Cancelling an already-cancelled appointment is a no-op. userCtx may be
	// nil on the patient-app path, which carries no authenticated staff user.
	CancelAppointment(ctx context.Context, id string, userCtx *models.UserContext) error
	// CheckConflicts reports whether another active appointment for the
	// provider overlaps [start, end), ignoring excludeID.
	CheckConflicts(ctx context.Context, providerID string, start, end time.Time, excludeID string) (bool, error)
	// CreateSimpleAppointment books a discrete slot from the patient-app form
	// and returns the new appointment id.
	CreateSimpleAppointment(ctx context.Context, input models.SimpleAppointmentInput) (string, error)
	// GetAppointmentsForDay lists appointments starting on the given calendar
	// day, optionally restricted to one provider id.
	GetAppointmentsForDay(ctx context.Context, date time.Time, providerID string) ([]models.Appointment, error)
	// GetAppointmentsForDate lists appointments for a date string, optionally
	// restricted to one provider name.
	GetAppointmentsForDate(ctx context.Context, date, providerName string) ([]models.Appointment, error)
	// GetAvailableSlots returns the provider's open slot labels for a date,
	// in chronological order. A non-work day yields an empty list.
	GetAvailableSlots(ctx context.Context, providerName, date string) ([]string, error)
	// GetProviderByName returns the provider record, or nil when the
	// directory has none (callers fall back to the default schedule).
	GetProviderByName(ctx context.Context, name string) (*models.Provider, error)
}
