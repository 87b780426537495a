// Package model defines the data structures used throughout the application.
package model

import "time"

// Role distinguishes the two account types. Faculty members own activity
// records; admins read the roster and generate reports.
type Role string

const (
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleFaculty || r == RoleAdmin
}

// User represents a registered account.
//
// Email is unique across all users (enforced by the users table).
// PasswordHash holds the bcrypt hash — its JSON tag is "-" so it can never
// leak into a response body.
//
// Designation and Phone are optional at registration and may be empty.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Department   string    `json:"department"`
	Designation  string    `json:"designation,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"userType"`
	CreatedAt    time.Time `json:"createdAt"`
}
