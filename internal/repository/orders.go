package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertOrder = `
INSERT INTO orders (id, customer_name, phone, address, total_amount, payment_method, payment_status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, customer_name, phone, address, total_amount, payment_method, payment_status, created_at, updated_at
`

type InsertOrderParams struct {
	ID            uuid.UUID
	CustomerName  string
	Phone         string
	Address       string
	TotalAmount   pgtype.Numeric
	PaymentMethod string
	PaymentStatus string
}

func (q *Queries) InsertOrder(ctx context.Context, arg InsertOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, insertOrder,
		arg.ID,
		arg.CustomerName,
		arg.Phone,
		arg.Address,
		arg.TotalAmount,
		arg.PaymentMethod,
		arg.PaymentStatus,
	)
	var i Order
	err := row.Scan(
		&i.ID,
		&i.CustomerName,
		&i.Phone,
		&i.Address,
		&i.TotalAmount,
		&i.PaymentMethod,
		&i.PaymentStatus,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

type InsertOrderItemsParams struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Name      string
	Price     pgtype.Numeric
	Quantity  int32
	Image     pgtype.Text
	Size      pgtype.Text
	Position  int32
}

func (q *Queries) InsertOrderItems(ctx context.Context, arg []InsertOrderItemsParams) (int64, error) {
	rows := make([][]any, len(arg))
	for i, a := range arg {
		rows[i] = []any{a.ID, a.OrderID, a.ProductID, a.Name, a.Price, a.Quantity, a.Image, a.Size, a.Position}
	}
	return q.db.CopyFrom(
		ctx,
		pgx.Identifier{"order_items"},
		[]string{"id", "order_id", "product_id", "name", "price", "quantity", "image", "size", "position"},
		pgx.CopyFromRows(rows),
	)
}

const findOrderById = `
SELECT id, customer_name, phone, address, total_amount, payment_method, payment_status, created_at, updated_at
FROM orders
WHERE id = $1
`

func (q *Queries) FindOrderById(ctx context.Context, id uuid.UUID) (Order, error) {
	row := q.db.QueryRow(ctx, findOrderById, id)
	var i Order
	err := row.Scan(
		&i.ID,
		&i.CustomerName,
		&i.Phone,
		&i.Address,
		&i.TotalAmount,
		&i.PaymentMethod,
		&i.PaymentStatus,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findOrderItemsByOrderId = `
SELECT id, order_id, product_id, name, price, quantity, image, size, position
FROM order_items
WHERE order_id = $1
ORDER BY position
`

func (q *Queries) FindOrderItemsByOrderId(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error) {
	rows, err := q.db.Query(ctx, findOrderItemsByOrderId, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []OrderItem{}
	for rows.Next() {
		var i OrderItem
		if err := rows.Scan(
			&i.ID,
			&i.OrderID,
			&i.ProductID,
			&i.Name,
			&i.Price,
			&i.Quantity,
			&i.Image,
			&i.Size,
			&i.Position,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateOrderStatus = `
UPDATE orders
SET payment_status = $2, updated_at = now()
WHERE id = $1
RETURNING id, customer_name, phone, address, total_amount, payment_method, payment_status, created_at, updated_at
`

type UpdateOrderStatusParams struct {
	ID            uuid.UUID
	PaymentStatus string
}

func (q *Queries) UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error) {
	row := q.db.QueryRow(ctx, updateOrderStatus, arg.ID, arg.PaymentStatus)
	var i Order
	err := row.Scan(
		&i.ID,
		&i.CustomerName,
		&i.Phone,
		&i.Address,
		&i.TotalAmount,
		&i.PaymentMethod,
		&i.PaymentStatus,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
