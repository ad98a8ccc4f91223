package models

import (
	"gorm.io/gorm"

	"github.com/fabiogif/moday-backoffice/pkg/pricing"
)

// Billing intervals a plan can use.
const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
)

// Plan is a subscription plan offered to store owners.
type Plan struct {
	gorm.Model
	Name        string        `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description string        `gorm:"type:text"                     json:"description"`
	Price       pricing.Money `gorm:"not null;default:0"            json:"price"`
	Interval    string        `gorm:"size:20;not null;default:monthly" json:"interval"`
	Active      bool          `gorm:"default:true"                  json:"is_active"`
}
