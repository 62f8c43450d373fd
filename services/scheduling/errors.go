package scheduling

import "errors"

// Expected, user-actionable failures. Both API shapes report these as typed
// errors so callers can branch with errors.Is; anything else coming out of the
// service is an infrastructure failure.
var (
	ErrPermissionDenied = errors.New("you do not have permission to modify appointments")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrConflict         = errors.New("time slot already booked for this provider")
	ErrNotFound         = errors.New("appointment not found")
)
