package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxemaroc/storefront/internal/cart"
	"github.com/luxemaroc/storefront/internal/config"
	inErrors "github.com/luxemaroc/storefront/internal/errors"
	"github.com/luxemaroc/storefront/pkg/request"
)

func newCartService(snapshots cart.SnapshotStore) *CartService {
	pricing := cart.NewPricing(config.Shop{
		FreeShippingThreshold: 1000,
		ShippingFee:           25,
		DiscountRate:          0.1,
	})
	return NewCartService(snapshots, pricing, cart.Promos{"LUXE10"})
}

func addItemRequest(quantity int32) request.AddCartItem {
	return request.AddCartItem{
		ProductID: uuid.New(),
		Name:      "Cashmere Coat",
		UnitPrice: decimal.NewFromInt(300),
		Quantity:  quantity,
	}
}

func TestCartServiceAddItemComputesLineTotal(t *testing.T) {
	c := context.Background()
	cartService := newCartService(cart.NewMemorySnapshotStore())

	res, err := cartService.AddItem(c, "session", addItemRequest(2))

	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.True(t, res.Items[0].LineTotal.Equal(decimal.NewFromInt(600)))
	assert.True(t, res.Summary.Subtotal.Equal(decimal.NewFromInt(600)))
	assert.True(t, res.Summary.Shipping.Equal(decimal.NewFromInt(25)))
	assert.EqualValues(t, 2, res.Summary.ItemCount)
}

func TestCartServiceApplyPromo(t *testing.T) {
	c := context.Background()
	snapshots := cart.NewMemorySnapshotStore()
	cartService := newCartService(snapshots)
	_, err := cartService.AddItem(c, "session", addItemRequest(2))
	require.NoError(t, err)

	res, err := cartService.ApplyPromo(c, "session", "luxe10")

	require.NoError(t, err)
	assert.True(t, res.Summary.PromoApplied)
	assert.True(t, res.Summary.Discount.Equal(decimal.NewFromInt(60)))

	stored, ok, err := snapshots.Get(c, fmt.Sprintf(keyCartPromo, "session"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "LUXE10", stored)
}

func TestCartServiceApplyPromoInvalidCode(t *testing.T) {
	c := context.Background()
	snapshots := cart.NewMemorySnapshotStore()
	cartService := newCartService(snapshots)
	_, err := cartService.AddItem(c, "session", addItemRequest(2))
	require.NoError(t, err)

	_, err = cartService.ApplyPromo(c, "session", "WELCOME5")

	assert.ErrorIs(t, err, inErrors.ErrInvalidPromoCode)
	_, ok, err := snapshots.Get(c, fmt.Sprintf(keyCartPromo, "session"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCartServiceClearCartRemovesPromo(t *testing.T) {
	c := context.Background()
	snapshots := cart.NewMemorySnapshotStore()
	cartService := newCartService(snapshots)
	_, err := cartService.AddItem(c, "session", addItemRequest(2))
	require.NoError(t, err)
	_, err = cartService.ApplyPromo(c, "session", "LUXE10")
	require.NoError(t, err)

	res, err := cartService.ClearCart(c, "session")

	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.False(t, res.Summary.PromoApplied)
	_, ok, err := snapshots.Get(c, fmt.Sprintf(keyCartPromo, "session"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCartServiceSessionsAreIsolated(t *testing.T) {
	c := context.Background()
	cartService := newCartService(cart.NewMemorySnapshotStore())

	_, err := cartService.AddItem(c, "first", addItemRequest(2))
	require.NoError(t, err)

	res, err := cartService.FindCart(c, "second")
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}
