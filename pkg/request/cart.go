package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddCartItem is a fully populated candidate line. The quantity bounds are
// enforced here at the boundary; the store clamps defensively as well.
type AddCartItem struct {
	ProductID uuid.UUID       `validate:"required"            json:"product_id"`
	Name      string          `validate:"required"            json:"name"`
	UnitPrice decimal.Decimal `validate:"required"            json:"unit_price"`
	Quantity  int32           `validate:"required,gte=1,lte=10" json:"quantity"`
	ImageURL  string          `                               json:"image_url"`
	Brand     string          `                               json:"brand"`
	Variant   string          `                               json:"variant"`
}

// UpdateCartItemQuantity carries the replacement quantity. Values below one are
// not an error: the store treats them as a silent no-op.
type UpdateCartItemQuantity struct {
	Quantity int32 `json:"quantity"`
}

type ApplyPromo struct {
	Code string `validate:"required" json:"code"`
}
