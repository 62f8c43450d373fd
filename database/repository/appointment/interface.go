package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"occlusa/models"
)

// ErrNotFound is returned when no appointment matches the given id.
var ErrNotFound = errors.New("appointment not found")

// ErrDuplicateSlot is returned when an insert collides with the unique active
// slot index, i.e. another active appointment already holds the same
// (provider, dateKey, timeSlot) combination.
var ErrDuplicateSlot = errors.New("slot already booked")

// AppointmentRepository defines persistence operations over the appointments
// collection.
type AppointmentRepository interface {
	// Create inserts the appointment, assigning its id and creation
	// timestamp, and returns the assigned id.
	Create(ctx context.Context, appt *models.Appointment) (string, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// ListByDate returns every appointment with the given dateKey, sorted
	// chronologically by start time. An empty providerName matches all
	// providers.
	ListByDate(ctx context.Context, dateKey, providerName string) ([]models.Appointment, error)
	// ListByDay returns appointments whose start time falls inside
	// [dayStart, dayEnd], sorted by start time. An empty providerID matches
	// all providers.
	ListByDay(ctx context.Context, dayStart, dayEnd time.Time, providerID string) ([]models.Appointment, error)
	// ListOverlapping returns active appointments for the provider whose
	// [startTime, endTime) range overlaps [start, end).
	ListOverlapping(ctx context.Context, providerID string, start, end time.Time) ([]models.Appointment, error)
	// ListActiveBySlot returns active appointments at an exact normalized
	// (providerName, dateKey, timeSlot) combination.
	ListActiveBySlot(ctx context.Context, providerName, dateKey, timeSlot string) ([]models.Appointment, error)
	// Update merges the given fields into the record; fields not mentioned
	// are left untouched.
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	SetStatus(ctx context.Context, id string, status models.AppointmentStatus) error
	EnsureIndexes() error
}
