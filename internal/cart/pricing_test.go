package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/luxemaroc/storefront/internal/config"
)

func testPricing() Pricing {
	return NewPricing(config.Shop{
		FreeShippingThreshold: 1000,
		ShippingFee:           25,
		DiscountRate:          0.1,
	})
}

func lineAt(unitPrice string, quantity int32) LineItem {
	return LineItem{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		UnitPrice: decimal.RequireFromString(unitPrice),
		Quantity:  quantity,
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name             string
		items            []LineItem
		promoApplied     bool
		expectedSubtotal string
		expectedShipping string
		expectedDiscount string
		expectedTotal    string
		expectedCount    int32
	}{
		{
			name:             "given empty cart should return zero totals with shipping fee",
			items:            nil,
			expectedSubtotal: "0",
			expectedShipping: "25",
			expectedDiscount: "0",
			expectedTotal:    "25",
			expectedCount:    0,
		},
		{
			name:             "given subtotal exactly at threshold should still charge shipping",
			items:            []LineItem{lineAt("500", 2)},
			expectedSubtotal: "1000",
			expectedShipping: "25",
			expectedDiscount: "0",
			expectedTotal:    "1025",
			expectedCount:    2,
		},
		{
			name:             "given subtotal above threshold should waive shipping",
			items:            []LineItem{lineAt("500.50", 2)},
			expectedSubtotal: "1001",
			expectedShipping: "0",
			expectedDiscount: "0",
			expectedTotal:    "1001",
			expectedCount:    2,
		},
		{
			name:             "given applied promo should discount a tenth of the subtotal",
			items:            []LineItem{lineAt("200", 5)},
			promoApplied:     true,
			expectedSubtotal: "1000",
			expectedShipping: "25",
			expectedDiscount: "100",
			expectedTotal:    "925",
			expectedCount:    5,
		},
		{
			name:             "given fractional discount should round to a whole amount",
			items:            []LineItem{lineAt("41.50", 3)},
			promoApplied:     true,
			expectedSubtotal: "124.5",
			expectedShipping: "25",
			expectedDiscount: "12",
			expectedTotal:    "137.5",
			expectedCount:    3,
		},
		{
			name:             "given promo above threshold should combine free shipping and discount",
			items:            []LineItem{lineAt("600", 2)},
			promoApplied:     true,
			expectedSubtotal: "1200",
			expectedShipping: "0",
			expectedDiscount: "120",
			expectedTotal:    "1080",
			expectedCount:    2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.items, testPricing(), tt.promoApplied)

			assert.True(
				t,
				summary.Subtotal.Equal(decimal.RequireFromString(tt.expectedSubtotal)),
				"subtotal=%s", summary.Subtotal,
			)
			assert.True(
				t,
				summary.Shipping.Equal(decimal.RequireFromString(tt.expectedShipping)),
				"shipping=%s", summary.Shipping,
			)
			assert.True(
				t,
				summary.Discount.Equal(decimal.RequireFromString(tt.expectedDiscount)),
				"discount=%s", summary.Discount,
			)
			assert.True(
				t,
				summary.Total.Equal(decimal.RequireFromString(tt.expectedTotal)),
				"total=%s", summary.Total,
			)
			assert.EqualValues(t, tt.expectedCount, summary.ItemCount)
			assert.Equal(t, tt.promoApplied, summary.PromoApplied)
		})
	}
}

func TestSummarizeTotalConsistency(t *testing.T) {
	items := []LineItem{lineAt("333.33", 3), lineAt("19.99", 2)}
	summary := Summarize(items, testPricing(), true)

	expected := summary.Subtotal.Add(summary.Shipping).Sub(summary.Discount)
	assert.True(t, summary.Total.Equal(expected), "total=%s expected=%s", summary.Total, expected)
}
