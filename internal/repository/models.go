package repository

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Order struct {
	ID            uuid.UUID
	CustomerName  string
	Phone         string
	Address       string
	TotalAmount   pgtype.Numeric
	PaymentMethod string
	PaymentStatus string
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type OrderItem struct {
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

type Product struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Price        pgtype.Numeric
	CategoryID   pgtype.UUID
	Brand        pgtype.Text
	Image        string
	Sizes        []string
	IsNew        bool
	IsBestSeller bool
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Category struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	CreatedAt pgtype.Timestamptz
}

type Brand struct {
	ID        uuid.UUID
	Name      string
	CreatedAt pgtype.Timestamptz
}
