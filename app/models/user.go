package models

import "gorm.io/gorm"

// Roles a user account can carry. Admin unlocks the management routes.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an operator account on the back office.
type User struct {
	gorm.Model
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	Role     string `gorm:"size:50;default:user" json:"role"`
}
