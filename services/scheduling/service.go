package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "occlusa/database/repository/appointment"
	auditRepo "occlusa/database/repository/audit"
	providerRepo "occlusa/database/repository/provider"
	"occlusa/models"
	"occlusa/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultSchedulingService is the production scheduling engine. It holds no
// state between calls; every operation independently fetches what it needs,
// so concurrent instances are safe.
type DefaultSchedulingService struct {
	Appointments appointmentRepo.AppointmentRepository
	Providers    providerRepo.ProviderRepository
	Audit        auditRepo.AuditRepository

	// Cache is optional; when set, availability responses are cached for
	// CacheTTL and invalidated on every mutation.
	Cache    *redis.Client
	CacheTTL time.Duration
}

// CreateAppointment books a time range for a provider. The role gate admits
// admin and front-desk users; dentists read their schedule but do not book.
func (s *DefaultSchedulingService) CreateAppointment(ctx context.Context, input models.CreateAppointmentInput, userCtx models.UserContext) (*models.Appointment, error) {
	if !userCtx.Role.CanModifyAppointments() {
		return nil, ErrPermissionDenied
	}
	if !input.StartTime.Before(input.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	conflict, err := s.CheckConflicts(ctx, input.ProviderID, input.StartTime, input.EndTime, "")
	if err != nil {
		return nil, fmt.Errorf("conflict check failed: %w", err)
	}
	if conflict {
		return nil, fmt.Errorf("%w: provider %s has an overlapping appointment", ErrConflict, input.ProviderID)
	}

	appt := &models.Appointment{
		PatientID:    input.PatientID,
		ProviderID:   input.ProviderID,
		ProviderName: input.ProviderName,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		DateKey:      DateKeyOf(input.StartTime),
		TimeSlot:     SlotLabel(minutesOfDay(input.StartTime)),
		Reason:       input.Reason,
		Status:       models.AppointmentStatusScheduled,
		CreatedBy:    userCtx.UserID,
	}

	id, err := s.Appointments.Create(ctx, appt)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			return nil, fmt.Errorf("%w: provider %s has an overlapping appointment", ErrConflict, input.ProviderID)
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	// Re-read so the caller sees the record exactly as persisted.
	created, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read back appointment %s: %w", id, err)
	}

	s.logAudit(ctx, userCtx.UserID, models.AuditActionCreated, id)
	s.invalidateAvailability(ctx, created.ProviderName, created.DateKey)
	return created, nil
}

// UpdateAppointment merges the provided fields into an existing appointment.
// Unspecified time bounds fall back to the stored values; a conflict check
// runs only when a bound actually changed, excluding the appointment's own id.
func (s *DefaultSchedulingService) UpdateAppointment(ctx context.Context, id string, updates models.UpdateAppointmentInput, userCtx models.UserContext) (*models.Appointment, error) {
	if !userCtx.Role.CanModifyAppointments() {
		return nil, ErrPermissionDenied
	}

	existing, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load appointment %s: %w", id, err)
	}

	newStart := existing.StartTime
	if updates.StartTime != nil {
		newStart = *updates.StartTime
	}
	newEnd := existing.EndTime
	if updates.EndTime != nil {
		newEnd = *updates.EndTime
	}
	if !newStart.Before(newEnd) {
		return nil, ErrInvalidTimeRange
	}

	timeChanged := updates.StartTime != nil || updates.EndTime != nil
	if timeChanged {
		conflict, err := s.CheckConflicts(ctx, existing.ProviderID, newStart, newEnd, id)
		if err != nil {
			return nil, fmt.Errorf("conflict check failed: %w", err)
		}
		if conflict {
			return nil, fmt.Errorf("%w: new time range clashes with another appointment", ErrConflict)
		}
	}

	fields := map[string]interface{}{}
	if updates.StartTime != nil {
		fields["startTime"] = *updates.StartTime
	}
	if updates.EndTime != nil {
		fields["endTime"] = *updates.EndTime
	}
	if timeChanged {
		// Keep the derived slot key in step with the range.
		fields["dateKey"] = DateKeyOf(newStart)
		fields["timeSlot"] = SlotLabel(minutesOfDay(newStart))
	}
	if updates.Reason != nil {
		fields["reason"] = *updates.Reason
	}
	if updates.Status != nil {
		fields["status"] = *updates.Status
	}

	if err := s.Appointments.Update(ctx, id, fields); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			return nil, fmt.Errorf("%w: new time range clashes with another appointment", ErrConflict)
		}
		return nil, fmt.Errorf("failed to update appointment %s: %w", id, err)
	}

	updated, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read back appointment %s: %w", id, err)
	}

	s.logAudit(ctx, userCtx.UserID, models.AuditActionUpdated, id)
	s.invalidateAvailability(ctx, existing.ProviderName, existing.DateKey)
	s.invalidateAvailability(ctx, updated.ProviderName, updated.DateKey)
	return updated, nil
}

// CancelAppointment soft-deletes an appointment: the record persists with
// status cancelled and its slot becomes bookable again. Repeating the call is
// a no-op write.
func (s *DefaultSchedulingService) CancelAppointment(ctx context.Context, id string, userCtx *models.UserContext) error {
	existing, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load appointment %s: %w", id, err)
	}

	if err := s.Appointments.SetStatus(ctx, id, models.AppointmentStatusCancelled); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to cancel appointment %s: %w", id, err)
	}

	if userCtx != nil {
		s.logAudit(ctx, userCtx.UserID, models.AuditActionCanceled, id)
	}
	s.invalidateAvailability(ctx, existing.ProviderName, existing.DateKey)
	return nil
}

// CreateSimpleAppointment books a discrete slot from the patient-app form.
// The stored record also carries the absolute time range derived from the
// slot label and the provider's slot length, so both booking shapes share one
// comparable representation.
func (s *DefaultSchedulingService) CreateSimpleAppointment(ctx context.Context, input models.SimpleAppointmentInput) (string, error) {
	dateKey := NormalizeDateKey(input.Date)
	timeSlot := NormalizeTimeSlot(input.TimeSlot)

	existing, err := s.Appointments.ListActiveBySlot(ctx, input.ProviderName, dateKey, timeSlot)
	if err != nil {
		return "", fmt.Errorf("duplicate check failed: %w", err)
	}
	if len(existing) > 0 {
		return "", fmt.Errorf("%w: %s at %s", ErrConflict, dateKey, timeSlot)
	}

	provider, err := s.resolveProvider(ctx, input.ProviderName)
	if err != nil {
		return "", err
	}

	appt := &models.Appointment{
		PatientName:  input.PatientName,
		Phone:        input.Phone,
		ProviderName: input.ProviderName,
		DateKey:      dateKey,
		TimeSlot:     timeSlot,
		Status:       models.AppointmentStatusBooked,
	}

	// Derive the absolute range; an unparseable label is stored as-is with a
	// zero range, matching the normalizer's best-effort contract.
	if day, derr := DateFromKey(dateKey); derr == nil {
		if mins, merr := SlotMinutes(timeSlot); merr == nil {
			appt.StartTime = day.Add(time.Duration(mins) * time.Minute)
			appt.EndTime = appt.StartTime.Add(time.Duration(provider.SlotLengthMinutes) * time.Minute)
		}
	}

	id, err := s.Appointments.Create(ctx, appt)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			return "", fmt.Errorf("%w: %s at %s", ErrConflict, dateKey, timeSlot)
		}
		return "", fmt.Errorf("failed to create appointment: %w", err)
	}

	s.invalidateAvailability(ctx, input.ProviderName, dateKey)
	return id, nil
}

// resolveProvider looks the provider up by name, falling back to the default
// schedule when the directory has no record.
func (s *DefaultSchedulingService) resolveProvider(ctx context.Context, name string) (models.Provider, error) {
	provider, err := s.Providers.GetByName(ctx, name)
	if err != nil {
		return models.Provider{}, fmt.Errorf("provider lookup failed: %w", err)
	}
	if provider == nil {
		utils.GetLogger().Debug("provider not in directory, using default schedule",
			zap.String("provider", name))
		return models.DefaultSchedule(name), nil
	}
	if provider.SlotLengthMinutes <= 0 {
		// A directory record without a slot length would stall slot
		// generation and produce empty booking ranges.
		provider.SlotLengthMinutes = models.DefaultSchedule(name).SlotLengthMinutes
	}
	return *provider, nil
}

// GetProviderByName returns the directory record, or nil when there is none.
func (s *DefaultSchedulingService) GetProviderByName(ctx context.Context, name string) (*models.Provider, error) {
	return s.Providers.GetByName(ctx, name)
}

// logAudit appends an audit entry for a mutation. Audit failures are logged
// and do not fail the mutation they describe.
func (s *DefaultSchedulingService) logAudit(ctx context.Context, userID string, action models.AuditAction, appointmentID string) {
	entry := &models.AuditLogEntry{
		UserID:        userID,
		Action:        action,
		AppointmentID: appointmentID,
	}
	if err := s.Audit.Append(ctx, entry); err != nil {
		utils.GetLogger().Error("failed to append audit entry",
			zap.String("action", string(action)),
			zap.String("appointmentId", appointmentID),
			zap.Error(err))
	}
}
