package model

import "time"

// Role is the closed set of user roles.
type Role string

const (
	// RoleEmployee is the default role for registered users.
	RoleEmployee Role = "employee"
	// RoleAdmin can decide leave requests and list all users.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether r grants administrative access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// NormalizeRole coerces arbitrary input to a valid role.
// Anything outside the known set becomes employee.
func NormalizeRole(s string) Role {
	if r := Role(s); r.Valid() {
		return r
	}
	return RoleEmployee
}

// User represents an authenticated user in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"size:20;not null;default:'employee'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
