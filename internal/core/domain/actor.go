package domain

import "github.com/google/uuid"

// Role is the marketplace role carried in the caller's token.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleFarmer Role = "farmer"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleFarmer || r == RoleAdmin
}

// Actor identifies who is performing an operation.
type Actor struct {
	UserID uuid.UUID `json:"user_id"`
	Role   Role      `json:"role"`
}

// IsAdmin returns true for platform administrators.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Is returns true when the actor is the given user.
func (a Actor) Is(userID uuid.UUID) bool {
	return a.UserID != uuid.Nil && a.UserID == userID
}
