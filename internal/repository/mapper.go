package repository

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/luxemaroc/storefront/pkg/response"
)

func NumericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:              d.Coefficient(),
		Exp:              d.Exponent(),
		InfinityModifier: pgtype.Finite,
		NaN:              false,
		Valid:            true,
	}
}

func DecimalFromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func (o Order) Response() response.Order {
	return response.Order{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Phone:         o.Phone,
		Address:       o.Address,
		TotalAmount:   DecimalFromNumeric(o.TotalAmount),
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		OrderItems:    []response.OrderItem{},
		CreatedAt:     o.CreatedAt.Time,
		UpdatedAt:     o.UpdatedAt.Time,
	}
}

func (i OrderItem) Response() response.OrderItem {
	return response.OrderItem{
		ID:        i.ID,
		OrderID:   i.OrderID,
		ProductID: i.ProductID,
		Name:      i.Name,
		Price:     DecimalFromNumeric(i.Price),
		Quantity:  i.Quantity,
		Image:     i.Image.String,
		Size:      i.Size.String,
	}
}

func (p Product) Response() response.Product {
	var categoryID *uuid.UUID
	if p.CategoryID.Valid {
		id := uuid.UUID(p.CategoryID.Bytes)
		categoryID = &id
	}
	return response.Product{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        DecimalFromNumeric(p.Price),
		CategoryID:   categoryID,
		Brand:        p.Brand.String,
		Image:        p.Image,
		Sizes:        p.Sizes,
		IsNew:        p.IsNew,
		IsBestSeller: p.IsBestSeller,
		CreatedAt:    p.CreatedAt.Time,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}
