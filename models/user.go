package models

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleDentist   UserRole = "dentist"
	RoleFrontdesk UserRole = "frontdesk"
)

// CanModifyAppointments reports whether the role may create, update or cancel
// appointments. Dentists view their schedule but do not book.
func (r UserRole) CanModifyAppointments() bool {
	return r == RoleAdmin || r == RoleFrontdesk
}

// UserContext identifies the caller of a scheduling operation. It is carried
// per-request and never persisted.
type UserContext struct {
	UserID     string   `json:"userId"`
	Role       UserRole `json:"role"`
	ProviderID string   `json:"providerId,omitempty"` // set when the user is a dentist
}
