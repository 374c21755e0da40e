package cart

import (
	"github.com/shopspring/decimal"

	"github.com/luxemaroc/storefront/internal/config"
)

// Pricing holds the storefront's fixed total-computation constants.
type Pricing struct {
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
	DiscountRate          decimal.Decimal
}

func NewPricing(cfg config.Shop) Pricing {
	return Pricing{
		FreeShippingThreshold: decimal.NewFromFloat(cfg.FreeShippingThreshold),
		ShippingFee:           decimal.NewFromFloat(cfg.ShippingFee),
		DiscountRate:          decimal.NewFromFloat(cfg.DiscountRate),
	}
}

// Summary is the derived totals of a cart snapshot. Every surface that displays
// totals derives them through Summarize rather than holding its own arithmetic.
type Summary struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	Shipping     decimal.Decimal `json:"shipping"`
	Discount     decimal.Decimal `json:"discount"`
	Total        decimal.Decimal `json:"total"`
	ItemCount    int32           `json:"item_count"`
	PromoApplied bool            `json:"promo_applied"`
}

// Summarize computes subtotal, shipping, discount and grand total for the given
// lines. Shipping is free strictly above the threshold; the discount applies the
// rate to the subtotal rounded to a whole amount when a promo is in effect.
func Summarize(items []LineItem, pricing Pricing, promoApplied bool) Summary {
	subtotal := decimal.Zero
	var count int32
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity)))
		count += item.Quantity
	}

	shipping := pricing.ShippingFee
	if subtotal.GreaterThan(pricing.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	discount := decimal.Zero
	if promoApplied {
		discount = subtotal.Mul(pricing.DiscountRate).Round(0)
	}

	return Summary{
		Subtotal:     subtotal,
		Shipping:     shipping,
		Discount:     discount,
		Total:        subtotal.Add(shipping).Sub(discount),
		ItemCount:    count,
		PromoApplied: promoApplied,
	}
}
