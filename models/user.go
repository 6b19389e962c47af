package models

import "time"

// Role is the authorization level stored with every user account.
type Role string

const (
	// RoleAdmin grants access to the catalog write routes.
	RoleAdmin Role = "admin"

	// RoleUser is assigned on signup. It can only use public routes.
	RoleUser Role = "user"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents a library account used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the server-assigned identifier of the user.
	UserID int64 `json:"id"`

	// Username is unique across all accounts and is used to log in.
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// Role decides whether the user may call admin-only routes.
	Role Role `json:"role"`

	// FirstName and LastName are optional display name fields.
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// SetRoleRequest carries an out-of-band role change issued by catalogctl.
// No HTTP route accepts it.
type SetRoleRequest struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
