package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxemaroc/storefront/internal/cart"
	"github.com/luxemaroc/storefront/internal/config"
	inErrors "github.com/luxemaroc/storefront/internal/errors"
	"github.com/luxemaroc/storefront/internal/repository"
	"github.com/luxemaroc/storefront/pkg/request"
)

type fakeOrderStore struct {
	insertedOrders []repository.InsertOrderParams
	batches        [][]repository.InsertOrderItemsParams
	headerErr      error
	failAtBatch    int
}

func (f *fakeOrderStore) InsertOrder(
	_ context.Context,
	arg repository.InsertOrderParams,
) (repository.Order, error) {
	if f.headerErr != nil {
		return repository.Order{}, f.headerErr
	}
	f.insertedOrders = append(f.insertedOrders, arg)
	return repository.Order{
		ID:            arg.ID,
		CustomerName:  arg.CustomerName,
		Phone:         arg.Phone,
		Address:       arg.Address,
		TotalAmount:   arg.TotalAmount,
		PaymentMethod: arg.PaymentMethod,
		PaymentStatus: arg.PaymentStatus,
	}, nil
}

func (f *fakeOrderStore) InsertOrderItems(
	_ context.Context,
	arg []repository.InsertOrderItemsParams,
) (int64, error) {
	if f.failAtBatch > 0 && len(f.batches)+1 == f.failAtBatch {
		return 0, errors.New("copy from failed")
	}
	f.batches = append(f.batches, arg)
	return int64(len(arg)), nil
}

func (f *fakeOrderStore) FindOrderById(
	_ context.Context,
	id uuid.UUID,
) (repository.Order, error) {
	for _, order := range f.insertedOrders {
		if order.ID == id {
			return repository.Order{ID: order.ID, CustomerName: order.CustomerName}, nil
		}
	}
	return repository.Order{}, fmt.Errorf("order not found")
}

func (f *fakeOrderStore) FindOrderItemsByOrderId(
	_ context.Context,
	orderID uuid.UUID,
) ([]repository.OrderItem, error) {
	return nil, nil
}

func (f *fakeOrderStore) UpdateOrderStatus(
	_ context.Context,
	arg repository.UpdateOrderStatusParams,
) (repository.Order, error) {
	return repository.Order{ID: arg.ID, PaymentStatus: arg.PaymentStatus}, nil
}

func checkoutPricing() cart.Pricing {
	return cart.NewPricing(config.Shop{
		FreeShippingThreshold: 1000,
		ShippingFee:           25,
		DiscountRate:          0.1,
	})
}

func seedCart(
	t *testing.T,
	snapshots cart.SnapshotStore,
	sessionID string,
	lineCount int,
) {
	c := context.Background()
	store := cart.NewStore(c, fmt.Sprintf(keyCartSnapshot, sessionID), snapshots)
	for i := range lineCount {
		require.NoError(t, store.AddItem(c, cart.LineItem{
			ProductID: uuid.New(),
			Name:      fmt.Sprintf("Item %d", i),
			UnitPrice: decimal.NewFromInt(50),
			Quantity:  1,
		}))
	}
}

func checkoutForm() request.Checkout {
	return request.Checkout{
		CustomerName: "Amina Benali",
		Phone:        "+212600000000",
		Address:      "12 Rue des Consuls, Rabat",
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	c := context.Background()
	orders := &fakeOrderStore{}
	snapshots := cart.NewMemorySnapshotStore()
	checkoutService := NewCheckoutService(orders, snapshots, checkoutPricing(), 10)

	_, err := checkoutService.Checkout(c, "session", checkoutForm())

	assert.ErrorIs(t, err, inErrors.ErrEmptyCart)
	assert.Empty(t, orders.insertedOrders)
	assert.Empty(t, orders.batches)
}

func TestCheckoutHeaderFailureLeavesCartIntact(t *testing.T) {
	c := context.Background()
	orders := &fakeOrderStore{headerErr: errors.New("insert failed")}
	snapshots := cart.NewMemorySnapshotStore()
	seedCart(t, snapshots, "session", 3)
	checkoutService := NewCheckoutService(orders, snapshots, checkoutPricing(), 10)

	_, err := checkoutService.Checkout(c, "session", checkoutForm())

	require.Error(t, err)
	assert.Empty(t, orders.batches)
	store := cart.NewStore(c, fmt.Sprintf(keyCartSnapshot, "session"), snapshots)
	assert.Len(t, store.Items(), 3)
}

func TestCheckoutBatchFailureStopsAndKeepsCart(t *testing.T) {
	c := context.Background()
	orders := &fakeOrderStore{failAtBatch: 2}
	snapshots := cart.NewMemorySnapshotStore()
	seedCart(t, snapshots, "session", 25)
	checkoutService := NewCheckoutService(orders, snapshots, checkoutPricing(), 10)

	_, err := checkoutService.Checkout(c, "session", checkoutForm())

	require.Error(t, err)
	assert.Len(t, orders.insertedOrders, 1)
	assert.Len(t, orders.batches, 1)
	store := cart.NewStore(c, fmt.Sprintf(keyCartSnapshot, "session"), snapshots)
	assert.Len(t, store.Items(), 25)
}

func TestCheckoutBatchesSequentiallyThenClearsCart(t *testing.T) {
	c := context.Background()
	orders := &fakeOrderStore{}
	snapshots := cart.NewMemorySnapshotStore()
	seedCart(t, snapshots, "session", 25)
	checkoutService := NewCheckoutService(orders, snapshots, checkoutPricing(), 10)

	order, err := checkoutService.Checkout(c, "session", checkoutForm())

	require.NoError(t, err)
	require.Len(t, orders.batches, 3)
	assert.Len(t, orders.batches[0], 10)
	assert.Len(t, orders.batches[1], 10)
	assert.Len(t, orders.batches[2], 5)
	assert.EqualValues(t, 0, orders.batches[0][0].Position)
	assert.EqualValues(t, 10, orders.batches[1][0].Position)
	assert.EqualValues(t, 24, orders.batches[2][4].Position)
	assert.Len(t, order.OrderItems, 25)
	assert.Equal(t, PaymentMethodCOD, order.PaymentMethod)
	assert.Equal(t, PaymentStatusPending, order.PaymentStatus)

	store := cart.NewStore(c, fmt.Sprintf(keyCartSnapshot, "session"), snapshots)
	assert.Empty(t, store.Items())
}

func TestCheckoutAppliesPromoToTotal(t *testing.T) {
	c := context.Background()
	orders := &fakeOrderStore{}
	snapshots := cart.NewMemorySnapshotStore()
	seedCart(t, snapshots, "session", 4)
	require.NoError(t, snapshots.Set(c, fmt.Sprintf(keyCartPromo, "session"), "LUXE10"))
	checkoutService := NewCheckoutService(orders, snapshots, checkoutPricing(), 10)

	order, err := checkoutService.Checkout(c, "session", checkoutForm())

	require.NoError(t, err)
	// 4 lines at 50: subtotal 200, shipping 25, discount 20
	assert.True(
		t,
		order.TotalAmount.Equal(decimal.NewFromInt(205)),
		"total=%s", order.TotalAmount,
	)

	_, ok, err := snapshots.Get(c, fmt.Sprintf(keyCartPromo, "session"))
	require.NoError(t, err)
	assert.False(t, ok)
}
