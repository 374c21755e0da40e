package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MinQuantity int32 = 1
	MaxQuantity int32 = 10
)

// LineItem is one row of the cart. Name, UnitPrice, ImageURL and Brand are a
// snapshot of the product's display data taken when the line was added; a later
// catalog change does not rewrite lines already in the cart.
type LineItem struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int32           `json:"quantity"`
	ImageURL  string          `json:"image_url"`
	Brand     string          `json:"brand"`
	Variant   string          `json:"variant,omitempty"`
}

// SameLine reports whether candidate should merge into existing. Lines merge on
// product id; a candidate that carries a variant must also match the existing
// line's variant, while a variant-less candidate matches on product id alone.
func SameLine(existing, candidate LineItem) bool {
	if existing.ProductID != candidate.ProductID {
		return false
	}
	if candidate.Variant == "" {
		return true
	}
	return existing.Variant == candidate.Variant
}

func clampQuantity(quantity int32) int32 {
	if quantity < MinQuantity {
		return MinQuantity
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}
