package models

import (
	"strconv"

	"gorm.io/gorm"

	"github.com/fabiogif/moday-backoffice/pkg/pricing"
)

// Product is a catalogue entry. Price is the base price in cents;
// variations and optionals refine it at order time.
type Product struct {
	gorm.Model
	Name        string        `gorm:"size:255;not null;index" json:"name"`
	Description string        `gorm:"type:text"               json:"description"`
	Price       pricing.Money `gorm:"not null;default:0"      json:"price"`
	ImagePath   string        `gorm:"size:512"                json:"-"`
	ImageURL    string        `gorm:"-"                       json:"image_url,omitempty"`
	Active      bool          `gorm:"default:true"            json:"is_active"`
	Variations  []Variation   `json:"variations,omitempty"`
	Optionals   []Optional    `json:"optionals,omitempty"`
}

// Variation is an exclusive size/tier choice. Price is a signed delta on
// the product's base price, so negative values discount.
type Variation struct {
	gorm.Model
	ProductID uint          `gorm:"not null;index"     json:"product_id"`
	Name      string        `gorm:"size:255;not null"  json:"name"`
	Price     pricing.Money `gorm:"not null;default:0" json:"price"`
}

// Pricing converts the row into the pricing package's value type.
func (v Variation) Pricing() pricing.Variation {
	return pricing.Variation{
		ID:    strconv.FormatUint(uint64(v.ID), 10),
		Name:  v.Name,
		Price: v.Price,
	}
}

// Optional is a repeatable add-on with a non-negative unit price.
type Optional struct {
	gorm.Model
	ProductID uint          `gorm:"not null;index"     json:"product_id"`
	Name      string        `gorm:"size:255;not null"  json:"name"`
	Price     pricing.Money `gorm:"not null;default:0" json:"price"`
}

// Pricing converts the row into the pricing package's value type.
func (o Optional) Pricing() pricing.Optional {
	return pricing.Optional{
		ID:    strconv.FormatUint(uint64(o.ID), 10),
		Name:  o.Name,
		Price: o.Price,
	}
}
