package pricing

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a pricing rejection.
type ErrorKind string

const (
	// KindInvalidPrice — a price violates its sign constraint
	// (base price ≥ 0, optional price ≥ 0).
	KindInvalidPrice ErrorKind = "invalid_price"
	// KindInvalidQuantity — a quantity is negative.
	KindInvalidQuantity ErrorKind = "invalid_quantity"
	// KindInvalidName — an entity name is empty after trimming.
	KindInvalidName ErrorKind = "invalid_name"
	// KindDuplicateOptional — the same optional appears twice in one
	// selection list; callers must pre-aggregate quantities.
	KindDuplicateOptional ErrorKind = "duplicate_optional"
)

// Error is a structured pricing rejection. It names the offending field
// so the caller can surface a field-level message.
type Error struct {
	Kind   ErrorKind
	Field  string
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("pricing: %s: %s", e.Field, e.Detail)
	}
	return fmt.Sprintf("pricing: %s: %s", e.Field, string(e.Kind))
}

// Variation is a mutually exclusive size/tier choice. Its price is a
// signed delta on the base price: negative deltas discount.
type Variation struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price Money  `json:"price"`
}

// Optional is a repeatable add-on with a non-negative unit price.
type Optional struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price Money  `json:"price"`
}

// Selection pairs an optional with a purchase-time quantity. The pairing
// is ephemeral (cart-only) and never persisted on the Optional itself.
type Selection struct {
	Optional Optional
	Quantity int
}

// ValidateVariation checks a variation at entity-creation time.
func ValidateVariation(v Variation) error {
	if strings.TrimSpace(v.Name) == "" {
		return &Error{Kind: KindInvalidName, Field: "name", Detail: "variation name must not be empty"}
	}
	return nil
}

// ValidateOptional checks an optional at entity-creation time. Unlike
// variations, optionals never discount, so a negative price is rejected.
func ValidateOptional(o Optional) error {
	if strings.TrimSpace(o.Name) == "" {
		return &Error{Kind: KindInvalidName, Field: "name", Detail: "optional name must not be empty"}
	}
	if o.Price < 0 {
		return &Error{Kind: KindInvalidPrice, Field: "price", Detail: "optional price must not be negative"}
	}
	return nil
}

// ComputeLineTotal prices one configured cart line:
//
//	unit  = base + variation.Price + Σ(optional.Price × quantity)
//	total = unit × quantity
//
// A nil variation and an empty selection list are both valid (the line
// is just base × quantity). The result is not clamped: a pathological
// discount that drives the total negative is a data problem the entity
// validators catch at save time, never something to floor silently here.
func ComputeLineTotal(base Money, variation *Variation, selections []Selection, quantity int) (Money, error) {
	if base < 0 {
		return 0, &Error{Kind: KindInvalidPrice, Field: "base_price", Detail: "base price must not be negative"}
	}
	if quantity < 0 {
		return 0, &Error{Kind: KindInvalidQuantity, Field: "quantity", Detail: "quantity must not be negative"}
	}

	unit := base
	if variation != nil {
		unit += variation.Price
	}

	seen := make(map[string]bool, len(selections))
	for _, sel := range selections {
		if sel.Quantity < 0 {
			return 0, &Error{
				Kind:   KindInvalidQuantity,
				Field:  "optionals." + sel.Optional.ID,
				Detail: fmt.Sprintf("quantity for %q must not be negative", sel.Optional.Name),
			}
		}
		if sel.Optional.Price < 0 {
			return 0, &Error{
				Kind:   KindInvalidPrice,
				Field:  "optionals." + sel.Optional.ID,
				Detail: fmt.Sprintf("price for %q must not be negative", sel.Optional.Name),
			}
		}
		if seen[sel.Optional.ID] {
			return 0, &Error{
				Kind:   KindDuplicateOptional,
				Field:  "optionals." + sel.Optional.ID,
				Detail: fmt.Sprintf("optional %q appears twice; aggregate quantities first", sel.Optional.Name),
			}
		}
		seen[sel.Optional.ID] = true

		unit += sel.Optional.Price.Mul(sel.Quantity)
	}

	return unit.Mul(quantity), nil
}
