package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findProductById = `
SELECT p.id, p.name, p.description, p.price, p.category_id, p.brand, p.image, p.sizes, p.is_new, p.is_best_seller, p.created_at, p.updated_at
FROM products p
WHERE p.id = $1
`

func (q *Queries) FindProductById(ctx context.Context, id uuid.UUID) (Product, error) {
	row := q.db.QueryRow(ctx, findProductById, id)
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Price,
		&i.CategoryID,
		&i.Brand,
		&i.Image,
		&i.Sizes,
		&i.IsNew,
		&i.IsBestSeller,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findProducts = `
SELECT p.id, p.name, p.description, p.price, p.category_id, p.brand, p.image, p.sizes, p.is_new, p.is_best_seller, p.created_at, p.updated_at
FROM products p
LEFT JOIN categories c ON c.id = p.category_id
WHERE ($1::text IS NULL OR c.slug = $1)
  AND ($2::text IS NULL OR p.brand = $2)
ORDER BY p.created_at DESC
`

type FindProductsParams struct {
	CategorySlug pgtype.Text
	Brand        pgtype.Text
}

func (q *Queries) FindProducts(ctx context.Context, arg FindProductsParams) ([]Product, error) {
	rows, err := q.db.Query(ctx, findProducts, arg.CategorySlug, arg.Brand)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	products := []Product{}
	for rows.Next() {
		var i Product
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Description,
			&i.Price,
			&i.CategoryID,
			&i.Brand,
			&i.Image,
			&i.Sizes,
			&i.IsNew,
			&i.IsBestSeller,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}
