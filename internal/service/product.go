package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	inErrors "github.com/luxemaroc/storefront/internal/errors"
	"github.com/luxemaroc/storefront/internal/log"
	"github.com/luxemaroc/storefront/internal/otel"
	"github.com/luxemaroc/storefront/internal/repository"
	"github.com/luxemaroc/storefront/pkg/response"
)

// ProductService is the read-only catalog surface. It resolves display metadata
// only; cart mutations never consult it for price or availability.
type ProductService struct {
	queries *repository.Queries
	cache   *redis.Client
}

func NewProductService(queries *repository.Queries, cache *redis.Client) *ProductService {
	return &ProductService{queries: queries, cache: cache}
}

func (s *ProductService) FindProductById(
	c context.Context,
	id uuid.UUID,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProductById")
	defer span.End()

	cacheKey := fmt.Sprintf(keyProduct, id.String())

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProductById").
		Str(log.KeyProductID, id.String()).
		Str(log.KeyCacheKey, cacheKey).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product in cache").Logger()
	logger.Info().Msg("finding product in cache")
	jsonString, err := s.cache.Get(c, cacheKey).Result()
	if err != nil {
		logger.Info().Err(err).Msg("product not in cache")

		logger = logger.With().Str(log.KeyProcess, "finding product in db").Logger()
		logger.Info().Msg("finding product in db")
		product, err := s.queries.FindProductById(c, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				err = inErrors.ErrProductNotFound
			} else {
				err = fmt.Errorf("failed finding productId=%s with error=%w", id.String(), err)
			}
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Product{}, err
		}
		logger.Info().Msg("found product in db")

		res := product.Response()

		logger = logger.With().Str(log.KeyProcess, "inserting product in cache").Logger()
		logger.Info().Msg("inserting product in cache")
		raw, err := json.Marshal(res)
		if err != nil {
			err = fmt.Errorf("failed marshaling product with error=%w", err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Product{}, err
		}
		if err = s.cache.Set(c, cacheKey, raw, time.Hour).Err(); err != nil {
			err = fmt.Errorf("failed inserting product in cache with error=%w", err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Product{}, err
		}
		logger.Info().Msg("inserted product in cache")

		return res, nil
	}
	logger.Info().Msg("found product in cache")

	logger = logger.With().Str(log.KeyProcess, "unmarshaling cache").Logger()
	res := response.Product{}
	if err = json.Unmarshal([]byte(jsonString), &res); err != nil {
		err = fmt.Errorf("failed unmarshaling cached product with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}

	return res, nil
}

func (s *ProductService) FindProducts(
	c context.Context,
	categorySlug string,
	brand string,
) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProducts").
		Str(log.KeyCategory, categorySlug).
		Str(log.KeyBrand, brand).
		Str(log.KeyProcess, "finding products").
		Logger()

	logger.Info().Msg("finding products")
	products, err := s.queries.FindProducts(c, repository.FindProductsParams{
		CategorySlug: pgtype.Text{String: categorySlug, Valid: categorySlug != ""},
		Brand:        pgtype.Text{String: brand, Valid: brand != ""},
	})
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Int(log.KeyProducts, len(products)).Msg("found products")

	res := make([]response.Product, len(products))
	for i, p := range products {
		res[i] = p.Response()
	}
	return res, nil
}
