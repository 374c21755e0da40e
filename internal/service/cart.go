package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/luxemaroc/storefront/internal/cart"
	inErrors "github.com/luxemaroc/storefront/internal/errors"
	"github.com/luxemaroc/storefront/internal/log"
	"github.com/luxemaroc/storefront/internal/otel"
	"github.com/luxemaroc/storefront/pkg/request"
	"github.com/luxemaroc/storefront/pkg/response"
)

// CartService is the single authority over a session's cart. Each operation
// materializes the store from the persisted snapshot, applies one mutation and
// writes the snapshot through before answering.
type CartService struct {
	snapshots cart.SnapshotStore
	pricing   cart.Pricing
	promos    cart.Promos
}

func NewCartService(
	snapshots cart.SnapshotStore,
	pricing cart.Pricing,
	promos cart.Promos,
) *CartService {
	return &CartService{snapshots: snapshots, pricing: pricing, promos: promos}
}

func (s *CartService) FindCart(c context.Context, sessionID string) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService FindCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService FindCart").
		Str(log.KeySessionID, sessionID).
		Logger()

	logger.Info().Msg("loading cart snapshot")
	store := s.load(c, sessionID)
	logger.Info().Int32(log.KeyCartItemCount, store.ItemCount()).Msg("loaded cart snapshot")

	return s.respond(c, sessionID, store), nil
}

func (s *CartService) AddItem(
	c context.Context,
	sessionID string,
	param request.AddCartItem,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService AddItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddItem").
		Str(log.KeySessionID, sessionID).
		Str(log.KeyProductID, param.ProductID.String()).
		Str(log.KeyVariant, param.Variant).
		Int32(log.KeyQuantity, param.Quantity).
		Logger()

	store := s.load(c, sessionID)

	logger = logger.With().Str(log.KeyProcess, "adding cart item").Logger()
	logger.Info().Msg("adding cart item")
	err := store.AddItem(c, cart.LineItem{
		ProductID: param.ProductID,
		Name:      param.Name,
		UnitPrice: param.UnitPrice,
		Quantity:  param.Quantity,
		ImageURL:  param.ImageURL,
		Brand:     param.Brand,
		Variant:   param.Variant,
	})
	if err != nil {
		err = fmt.Errorf("failed adding cart item with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Int32(log.KeyCartItemCount, store.ItemCount()).Msg("added cart item")

	return s.respond(c, sessionID, store), nil
}

func (s *CartService) UpdateQuantity(
	c context.Context,
	sessionID string,
	lineID uuid.UUID,
	quantity int32,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService UpdateQuantity")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService UpdateQuantity").
		Str(log.KeySessionID, sessionID).
		Str(log.KeyLineID, lineID.String()).
		Int32(log.KeyQuantity, quantity).
		Logger()

	store := s.load(c, sessionID)

	logger = logger.With().Str(log.KeyProcess, "updating quantity").Logger()
	logger.Info().Msg("updating quantity")
	err := store.UpdateQuantity(c, lineID, quantity)
	if err != nil {
		err = fmt.Errorf("failed updating quantity with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("updated quantity")

	return s.respond(c, sessionID, store), nil
}

func (s *CartService) RemoveItem(
	c context.Context,
	sessionID string,
	lineID uuid.UUID,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService RemoveItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveItem").
		Str(log.KeySessionID, sessionID).
		Str(log.KeyLineID, lineID.String()).
		Logger()

	store := s.load(c, sessionID)

	logger = logger.With().Str(log.KeyProcess, "removing cart item").Logger()
	logger.Info().Msg("removing cart item")
	err := store.RemoveItem(c, lineID)
	if err != nil {
		err = fmt.Errorf("failed removing cart item with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("removed cart item")

	return s.respond(c, sessionID, store), nil
}

func (s *CartService) ClearCart(c context.Context, sessionID string) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService ClearCart").
		Str(log.KeySessionID, sessionID).
		Str(log.KeyProcess, "clearing cart").
		Logger()

	store := s.load(c, sessionID)

	logger.Info().Msg("clearing cart")
	if err := store.Clear(c); err != nil {
		err = fmt.Errorf("failed clearing cart with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	if err := s.snapshots.Del(c, fmt.Sprintf(keyCartPromo, sessionID)); err != nil {
		err = fmt.Errorf("failed clearing promo state with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("cleared cart")

	return s.respond(c, sessionID, store), nil
}

// ApplyPromo validates the code against the allow-list and stores it as the
// session's applied promo. A second valid code replaces the first; an invalid
// code leaves the discount at zero and returns ErrInvalidPromoCode.
func (s *CartService) ApplyPromo(
	c context.Context,
	sessionID string,
	code string,
) (response.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService ApplyPromo")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService ApplyPromo").
		Str(log.KeySessionID, sessionID).
		Str(log.KeyPromoCode, code).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating promo code").Logger()
	logger.Info().Msg("validating promo code")
	normalized, ok := s.promos.Normalize(code)
	if !ok {
		inErrors.HandleError(inErrors.ErrInvalidPromoCode, span)
		logger.Error().
			Err(inErrors.ErrInvalidPromoCode).
			Msg(inErrors.ErrInvalidPromoCode.Error())
		return response.Cart{}, inErrors.ErrInvalidPromoCode
	}
	logger.Info().Msg("validated promo code")

	logger = logger.With().Str(log.KeyProcess, "storing promo code").Logger()
	logger.Info().Msg("storing promo code")
	err := s.snapshots.Set(c, fmt.Sprintf(keyCartPromo, sessionID), normalized)
	if err != nil {
		err = fmt.Errorf("failed storing promo code with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Cart{}, err
	}
	logger.Info().Msg("stored promo code")

	return s.respond(c, sessionID, s.load(c, sessionID)), nil
}

func (s *CartService) load(c context.Context, sessionID string) *cart.Store {
	return cart.NewStore(c, fmt.Sprintf(keyCartSnapshot, sessionID), s.snapshots)
}

func (s *CartService) promoApplied(c context.Context, sessionID string) bool {
	_, ok, err := s.snapshots.Get(c, fmt.Sprintf(keyCartPromo, sessionID))
	return err == nil && ok
}

func (s *CartService) respond(c context.Context, sessionID string, store *cart.Store) response.Cart {
	items := store.Items()
	summary := cart.Summarize(items, s.pricing, s.promoApplied(c, sessionID))
	return cartResponse(items, summary)
}

func cartResponse(items []cart.LineItem, summary cart.Summary) response.Cart {
	lines := make([]response.CartItem, len(items))
	for i, item := range items {
		lines[i] = response.CartItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			LineTotal: item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity)),
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
			Brand:     item.Brand,
			Variant:   item.Variant,
		}
	}
	return response.Cart{
		Items: lines,
		Summary: response.Summary{
			Subtotal:     summary.Subtotal,
			Shipping:     summary.Shipping,
			Discount:     summary.Discount,
			Total:        summary.Total,
			ItemCount:    summary.ItemCount,
			PromoApplied: summary.PromoApplied,
		},
	}
}
