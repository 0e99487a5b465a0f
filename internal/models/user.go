package models

import "time"

// Role is the user's access level.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// UserRecord is the full identity record as stored by the registry,
// including the password hash. It never crosses the service boundary:
// every registry operation returns the Sanitized projection instead, and
// only the auth orchestrator may read the hash (via the credential lookup).
type UserRecord struct {
	ID           int64
	Name         string
	Email        string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// User is the sanitized projection of a UserRecord. It has no hash field at
// all, so serializing it cannot leak credentials.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sanitized returns the external view of the record.
func (r *UserRecord) Sanitized() User {
	return User{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Role:      r.Role,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
