package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"

	"github.com/luxemaroc/storefront/internal/cart"
	inErrors "github.com/luxemaroc/storefront/internal/errors"
	"github.com/luxemaroc/storefront/internal/log"
	"github.com/luxemaroc/storefront/internal/otel"
	"github.com/luxemaroc/storefront/internal/repository"
	"github.com/luxemaroc/storefront/pkg/request"
	"github.com/luxemaroc/storefront/pkg/response"
)

const (
	PaymentMethodCOD     = "cod"
	PaymentStatusPending = "pending"
)

// OrderStore is the order collaborator contract: header insert, batched item
// inserts and the confirmation read.
type OrderStore interface {
	InsertOrder(c context.Context, arg repository.InsertOrderParams) (repository.Order, error)
	InsertOrderItems(c context.Context, arg []repository.InsertOrderItemsParams) (int64, error)
	FindOrderById(c context.Context, id uuid.UUID) (repository.Order, error)
	FindOrderItemsByOrderId(c context.Context, orderID uuid.UUID) ([]repository.OrderItem, error)
	UpdateOrderStatus(c context.Context, arg repository.UpdateOrderStatusParams) (repository.Order, error)
}

// CheckoutService materializes a cart snapshot plus the shipping form into an
// order submission. The protocol is sequential and not transactional: header
// first, then item batches, then — only after every batch succeeded — the cart
// is cleared. A failed batch leaves the header and the batches already written.
type CheckoutService struct {
	orders    OrderStore
	snapshots cart.SnapshotStore
	pricing   cart.Pricing
	batchSize int
}

func NewCheckoutService(
	orders OrderStore,
	snapshots cart.SnapshotStore,
	pricing cart.Pricing,
	batchSize int,
) *CheckoutService {
	if batchSize < 1 {
		batchSize = 10
	}
	return &CheckoutService{
		orders:    orders,
		snapshots: snapshots,
		pricing:   pricing,
		batchSize: batchSize,
	}
}

func (s *CheckoutService) Checkout(
	c context.Context,
	sessionID string,
	form request.Checkout,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "CheckoutService Checkout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CheckoutService Checkout").
		Str(log.KeySessionID, sessionID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "loading cart").Logger()
	logger.Info().Msg("loading cart")
	store := cart.NewStore(c, fmt.Sprintf(keyCartSnapshot, sessionID), s.snapshots)
	items := store.Items()
	if len(items) == 0 {
		inErrors.HandleError(inErrors.ErrEmptyCart, span)
		logger.Error().Err(inErrors.ErrEmptyCart).Msg(inErrors.ErrEmptyCart.Error())
		return response.Order{}, inErrors.ErrEmptyCart
	}
	logger.Info().Int32(log.KeyCartItemCount, store.ItemCount()).Msg("loaded cart")

	logger = logger.With().Str(log.KeyProcess, "computing totals").Logger()
	logger.Info().Msg("computing totals")
	promoApplied := s.promoApplied(c, sessionID)
	summary := cart.Summarize(items, s.pricing, promoApplied)
	logger = logger.With().Any(log.KeySummary, summary).Logger()
	logger.Info().Msg("computed totals")

	logger = logger.With().Str(log.KeyProcess, "inserting order header").Logger()
	logger.Info().Msg("inserting order header")
	span.AddEvent("inserting order header")
	order, err := s.orders.InsertOrder(c, repository.InsertOrderParams{
		ID:            uuid.New(),
		CustomerName:  form.CustomerName,
		Phone:         form.Phone,
		Address:       form.Address,
		TotalAmount:   repository.NumericFromDecimal(summary.Total),
		PaymentMethod: PaymentMethodCOD,
		PaymentStatus: PaymentStatusPending,
	})
	if err != nil {
		err = fmt.Errorf("failed inserting order header with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger = logger.With().Str(log.KeyOrderID, order.ID.String()).Logger()
	logger.Info().Msg("inserted order header")
	span.AddEvent("inserted order header")

	logger = logger.With().Str(log.KeyProcess, "inserting order items").Logger()
	orderItems := materializeOrderItems(order.ID, items)
	for start := 0; start < len(orderItems); start += s.batchSize {
		end := min(start+s.batchSize, len(orderItems))
		batch := orderItems[start:end]

		logger.Info().
			Int(log.KeyBatch, start/s.batchSize+1).
			Int(log.KeyBatchSize, len(batch)).
			Msg("inserting order item batch")
		span.AddEvent("inserting order item batch")
		if _, err := s.orders.InsertOrderItems(c, batch); err != nil {
			err = fmt.Errorf(
				"failed inserting order item batch %d for orderId=%s with error=%w",
				start/s.batchSize+1,
				order.ID.String(),
				err,
			)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Order{}, err
		}
		logger.Info().
			Int(log.KeyBatch, start/s.batchSize+1).
			Msg("inserted order item batch")
	}
	logger.Info().Int(log.KeyOrderItems, len(orderItems)).Msg("inserted order items")

	logger = logger.With().Str(log.KeyProcess, "clearing cart").Logger()
	logger.Info().Msg("clearing cart")
	span.AddEvent("clearing cart")
	if err := store.Clear(c); err != nil {
		err = fmt.Errorf("failed clearing cart after checkout with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	if err := s.snapshots.Del(c, fmt.Sprintf(keyCartPromo, sessionID)); err != nil {
		logger.Error().Err(err).Msg(err.Error())
	}
	logger.Info().Msg("cleared cart")
	span.AddEvent("cleared cart")

	res := order.Response()
	for _, item := range orderItems {
		res.OrderItems = append(res.OrderItems, response.OrderItem{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     repository.DecimalFromNumeric(item.Price),
			Quantity:  item.Quantity,
			Image:     item.Image.String,
			Size:      item.Size.String,
		})
	}
	return res, nil
}

func (s *CheckoutService) FindOrderWithItems(
	c context.Context,
	orderID uuid.UUID,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "CheckoutService FindOrderWithItems")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CheckoutService FindOrderWithItems").
		Str(log.KeyOrderID, orderID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding order").Logger()
	logger.Info().Msg("finding order")
	order, err := s.orders.FindOrderById(c, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = inErrors.ErrOrderNotFound
		} else {
			err = fmt.Errorf("failed finding orderId=%s with error=%w", orderID.String(), err)
		}
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("found order")

	logger = logger.With().Str(log.KeyProcess, "finding order items").Logger()
	logger.Info().Msg("finding order items")
	items, err := s.orders.FindOrderItemsByOrderId(c, orderID)
	if err != nil {
		err = fmt.Errorf(
			"failed finding order items for orderId=%s with error=%w",
			orderID.String(),
			err,
		)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Int(log.KeyOrderItems, len(items)).Msg("found order items")

	res := order.Response()
	for _, item := range items {
		res.OrderItems = append(res.OrderItems, item.Response())
	}
	return res, nil
}

func (s *CheckoutService) UpdateStatus(
	c context.Context,
	orderID uuid.UUID,
	status string,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "CheckoutService UpdateStatus")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CheckoutService UpdateStatus").
		Str(log.KeyOrderID, orderID.String()).
		Str(log.KeyProcess, "updating order status").
		Logger()

	logger.Info().Msgf("updating order status to %s", status)
	order, err := s.orders.UpdateOrderStatus(c, repository.UpdateOrderStatusParams{
		ID:            orderID,
		PaymentStatus: status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = inErrors.ErrOrderNotFound
		} else {
			err = fmt.Errorf(
				"failed updating status of orderId=%s with error=%w",
				orderID.String(),
				err,
			)
		}
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msgf("updated order status to %s", status)

	return order.Response(), nil
}

func (s *CheckoutService) promoApplied(c context.Context, sessionID string) bool {
	_, ok, err := s.snapshots.Get(c, fmt.Sprintf(keyCartPromo, sessionID))
	return err == nil && ok
}

// materializeOrderItems is the one-way transformation from cart lines to the
// order submission payload. Position carries the cart's insertion order so the
// confirmation view reads items back in the order they were added.
func materializeOrderItems(
	orderID uuid.UUID,
	items []cart.LineItem,
) []repository.InsertOrderItemsParams {
	params := make([]repository.InsertOrderItemsParams, len(items))
	for i, item := range items {
		params[i] = repository.InsertOrderItemsParams{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     repository.NumericFromDecimal(item.UnitPrice),
			Quantity:  item.Quantity,
			Image:     pgtype.Text{String: item.ImageURL, Valid: item.ImageURL != ""},
			Size:      pgtype.Text{String: item.Variant, Valid: item.Variant != ""},
			Position:  int32(i),
		}
	}
	return params
}
