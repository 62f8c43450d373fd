package scheduling

import (
	"context"
	"fmt"
	"time"
)

// CheckConflicts reports whether another active appointment for the provider
// overlaps [start, end). Two ranges [s1,e1) and [s2,e2) conflict iff
// s1 < e2 && e1 > s2, so back-to-back appointments never clash. excludeID
// keeps an appointment from conflicting with itself during updates.
func (s *DefaultSchedulingService) CheckConflicts(ctx context.Context, providerID string, start, end time.Time, excludeID string) (bool, error) {
	overlapping, err := s.Appointments.ListOverlapping(ctx, providerID, start, end)
	if err != nil {
		return false, fmt.Errorf("error querying overlapping appointments: %w", err)
	}

	for _, appt := range overlapping {
		if appt.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}
