package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	pgxuuid "github.com/vgarvardt/pgx-google-uuid/v5"
)

func setupQueries(t *testing.T, c context.Context) *Queries {
	t.Helper()

	pgContainer, err := postgres.Run(
		c,
		"postgres:16.6-alpine3.21",
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithDatabase("postgres"),
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			filepath.Join("..", "..", "migrations", "20250312101000_create_table_categories.up.sql"),
			filepath.Join("..", "..", "migrations", "20250312101100_create_table_brands.up.sql"),
			filepath.Join("..", "..", "migrations", "20250312101200_create_table_products.up.sql"),
			filepath.Join("..", "..", "migrations", "20250312101300_create_table_orders.up.sql"),
			filepath.Join("..", "..", "migrations", "20250312101400_create_table_order_items.up.sql"),
		),
	)
	if err != nil {
		t.Fatalf("failed running postgres container with error: %s", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	})

	pgConnStr, err := pgContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting postgres connection string with error: %s", err)
	}

	pgConfig, err := pgxpool.ParseConfig(pgConnStr)
	if err != nil {
		t.Fatalf("failed parsing pgconfig with error: %s", err)
	}
	pgConfig.AfterConnect = func(c context.Context, conn *pgx.Conn) error {
		pgxuuid.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(c, pgConfig)
	if err != nil {
		t.Fatalf("failed creating postgres pool with error: %s", err)
	}
	t.Cleanup(pool.Close)

	if err = pool.Ping(c); err != nil {
		t.Fatalf("failed ping postgres pool with error: %s", err)
	}

	return New(pool)
}

func TestOrderRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	c := context.Background()
	queries := setupQueries(t, c)

	orderID := uuid.New()
	order, err := queries.InsertOrder(c, InsertOrderParams{
		ID:            orderID,
		CustomerName:  "Amina Benali",
		Phone:         "+212600000000",
		Address:       "12 Rue des Consuls, Rabat",
		TotalAmount:   NumericFromDecimal(decimal.RequireFromString("925")),
		PaymentMethod: "cod",
		PaymentStatus: "pending",
	})
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, "cod", order.PaymentMethod)
	assert.Equal(t, "pending", order.PaymentStatus)
	assert.True(t, order.CreatedAt.Valid)

	items := make([]InsertOrderItemsParams, 12)
	for i := range items {
		items[i] = InsertOrderItemsParams{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: uuid.New(),
			Name:      fmt.Sprintf("Silk Scarf %d", i),
			Price:     NumericFromDecimal(decimal.RequireFromString("120")),
			Quantity:  1,
			Size:      pgtype.Text{String: "M", Valid: true},
			Position:  int32(i),
		}
	}
	inserted, err := queries.InsertOrderItems(c, items)
	require.NoError(t, err)
	assert.EqualValues(t, len(items), inserted)

	found, err := queries.FindOrderById(c, orderID)
	require.NoError(t, err)
	assert.Equal(t, "Amina Benali", found.CustomerName)
	assert.True(
		t,
		DecimalFromNumeric(found.TotalAmount).Equal(decimal.RequireFromString("925")),
	)

	foundItems, err := queries.FindOrderItemsByOrderId(c, orderID)
	require.NoError(t, err)
	require.Len(t, foundItems, len(items))
	assert.Equal(t, "M", foundItems[0].Size.String)
	for i, item := range foundItems {
		assert.EqualValues(t, i, item.Position)
		assert.Equal(t, items[i].Name, item.Name)
	}

	updated, err := queries.UpdateOrderStatus(c, UpdateOrderStatusParams{
		ID:            orderID,
		PaymentStatus: "paid",
	})
	require.NoError(t, err)
	assert.Equal(t, "paid", updated.PaymentStatus)
}

func TestFindOrderByIdMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	c := context.Background()
	queries := setupQueries(t, c)

	_, err := queries.FindOrderById(c, uuid.New())
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
