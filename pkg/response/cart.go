package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Cart struct {
	Items   []CartItem `json:"items"`
	Summary Summary    `json:"summary"`
}

type CartItem struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
	Quantity  int32           `json:"quantity"`
	ImageURL  string          `json:"image_url"`
	Brand     string          `json:"brand"`
	Variant   string          `json:"variant,omitempty"`
}

type Summary struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	Shipping     decimal.Decimal `json:"shipping"`
	Discount     decimal.Decimal `json:"discount"`
	Total        decimal.Decimal `json:"total"`
	ItemCount    int32           `json:"item_count"`
	PromoApplied bool            `json:"promo_applied"`
}
