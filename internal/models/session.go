package models

// Role enumerates the user roles known to the console.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleUser     Role = "user"
	RoleCustomer Role = "customer"
)

// Session is the authenticated upstream session. It mirrors the
// `session` key the browser client keeps in localStorage: identity
// fields plus the bearer token attached to every upstream call.
type Session struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
	Token string `json:"token"`
}

// IsStaff reports whether the session belongs to an organization-side
// role (admin/manager) rather than a shop-side one.
func (s *Session) IsStaff() bool {
	return s.Role == RoleAdmin || s.Role == RoleManager
}
