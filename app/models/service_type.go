package models

import "gorm.io/gorm"

// ServiceType is a fulfilment channel offered by the store
// (delivery, pickup, dine-in…).
type ServiceType struct {
	gorm.Model
	Name        string `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text"                     json:"description"`
	Active      bool   `gorm:"default:true"                  json:"is_active"`
}
