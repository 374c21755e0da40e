package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   *uuid.UUID      `json:"category_id,omitempty"`
	Brand        string          `json:"brand,omitempty"`
	Image        string          `json:"image"`
	Sizes        []string        `json:"sizes,omitempty"`
	IsNew        bool            `json:"is_new"`
	IsBestSeller bool            `json:"is_best_seller"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
