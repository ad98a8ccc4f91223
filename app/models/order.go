package models

import (
	"gorm.io/gorm"

	"github.com/fabiogif/moday-backoffice/pkg/pricing"
)

// Order statuses, in rough lifecycle order.
const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// OrderStatuses is the set of accepted status values.
var OrderStatuses = map[string]bool{
	OrderPending:   true,
	OrderPreparing: true,
	OrderReady:     true,
	OrderDelivered: true,
	OrderCancelled: true,
}

// Order is one customer order. Item prices are snapshots taken at order
// time, so later catalogue edits never rewrite history.
type Order struct {
	gorm.Model
	UserID        uint          `gorm:"not null;index"             json:"user_id"` // operator who entered it
	CustomerName  string        `gorm:"size:255;not null"          json:"customer_name"`
	CustomerPhone string        `gorm:"size:50"                    json:"customer_phone"`
	DeliveryType  string        `gorm:"size:20;not null"           json:"delivery_type"` // delivery | pickup
	Status        string        `gorm:"size:50;default:pending;index" json:"status"`
	Total         pricing.Money `gorm:"not null;default:0"         json:"total"`
	Items         []OrderItem   `json:"items,omitempty"`
}

// OrderItem is one priced line of an order.
type OrderItem struct {
	gorm.Model
	OrderID        uint                `gorm:"not null;index"     json:"order_id"`
	ProductID      uint                `gorm:"not null;index"     json:"product_id"`
	ProductName    string              `gorm:"size:255;not null"  json:"product_name"`
	BasePrice      pricing.Money       `gorm:"not null;default:0" json:"base_price"`
	VariationID    *uint               `json:"variation_id,omitempty"`
	VariationName  string              `gorm:"size:255"           json:"variation_name,omitempty"`
	VariationPrice pricing.Money       `gorm:"not null;default:0" json:"variation_price"`
	Quantity       int                 `gorm:"not null;default:1" json:"quantity"`
	Total          pricing.Money       `gorm:"not null;default:0" json:"total"`
	Optionals      []OrderItemOptional `json:"optionals,omitempty"`
}

// OrderItemOptional is an add-on snapshot on one order line.
type OrderItemOptional struct {
	gorm.Model
	OrderItemID uint          `gorm:"not null;index"     json:"order_item_id"`
	OptionalID  uint          `gorm:"not null"           json:"optional_id"`
	Name        string        `gorm:"size:255;not null"  json:"name"`
	Price       pricing.Money `gorm:"not null;default:0" json:"price"`
	Quantity    int           `gorm:"not null;default:1" json:"quantity"`
}
