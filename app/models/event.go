package models

import (
	"time"

	"gorm.io/gorm"
)

// Event is a promotional event shown on the storefront during its
// date window.
type Event struct {
	gorm.Model
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text"         json:"description"`
	StartsAt    time.Time `gorm:"not null;index"    json:"starts_at"`
	EndsAt      time.Time `gorm:"not null"          json:"ends_at"`
	Active      bool      `gorm:"default:true"      json:"is_active"`
}
