package scheduling

import (
	"context"
	"fmt"
	"time"

	"occlusa/models"
	"occlusa/utils"

	"go.uber.org/zap"
)

// GetAppointmentsForDay lists appointments starting on the given calendar
// day, optionally restricted to one provider id (the structured call shape).
func (s *DefaultSchedulingService) GetAppointmentsForDay(ctx context.Context, date time.Time, providerID string) ([]models.Appointment, error) {
	local := date.In(time.Local)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
	dayEnd := dayStart.Add(24*time.Hour - time.Millisecond)

	appts, err := s.Appointments.ListByDay(ctx, dayStart, dayEnd, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list day appointments: %w", err)
	}
	return appts, nil
}

// GetAppointmentsForDate lists appointments for a date string, optionally
// restricted to one provider name (the form call shape). Results come back
// in chronological order.
func (s *DefaultSchedulingService) GetAppointmentsForDate(ctx context.Context, date, providerName string) ([]models.Appointment, error) {
	dateKey := NormalizeDateKey(date)
	appts, err := s.Appointments.ListByDate(ctx, dateKey, providerName)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for %s: %w", dateKey, err)
	}
	return appts, nil
}

// GetAvailableSlots enumerates the provider's bookable slot labels for a date
// and removes every slot held by an active appointment. Availability and the
// day-schedule view go through the same listing and the same normalization,
// so what the app shows as booked is exactly what availability excludes.
func (s *DefaultSchedulingService) GetAvailableSlots(ctx context.Context, providerName, date string) ([]string, error) {
	logger := utils.GetLogger()
	dateKey := NormalizeDateKey(date)

	if cached, ok := s.cachedAvailability(ctx, providerName, dateKey); ok {
		return cached, nil
	}

	provider, err := s.resolveProvider(ctx, providerName)
	if err != nil {
		return nil, err
	}

	day, err := DateFromKey(dateKey)
	if err != nil {
		// An unparseable date has no weekday, so no working window applies.
		logger.Debug("unparseable date for availability",
			zap.String("provider", providerName),
			zap.String("date", date))
		return []string{}, nil
	}
	if !provider.WorksOn(int(day.Weekday())) {
		logger.Debug("provider does not work on requested day",
			zap.String("provider", providerName),
			zap.String("dateKey", dateKey),
			zap.Int("weekday", int(day.Weekday())))
		return []string{}, nil
	}

	startMin, err := ParseClock(provider.StartTime)
	if err != nil {
		return nil, fmt.Errorf("provider %s has invalid start time: %w", providerName, err)
	}
	endMin, err := ParseClock(provider.EndTime)
	if err != nil {
		return nil, fmt.Errorf("provider %s has invalid end time: %w", providerName, err)
	}

	var slots []string
	for m := startMin; m < endMin; m += provider.SlotLengthMinutes {
		slots = append(slots, SlotLabel(m))
	}

	appts, err := s.GetAppointmentsForDate(ctx, date, providerName)
	if err != nil {
		return nil, err
	}
	booked := make(map[string]bool)
	for _, appt := range appts {
		if appt.Status.Active() {
			booked[NormalizeTimeSlot(appt.TimeSlot)] = true
		}
	}

	available := make([]string, 0, len(slots))
	for _, slot := range slots {
		if !booked[NormalizeTimeSlot(slot)] {
			available = append(available, slot)
		}
	}

	s.storeAvailability(ctx, providerName, dateKey, available)
	return available, nil
}
