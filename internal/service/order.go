package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/quickbite/food-delivery-api/internal/models"
	"github.com/quickbite/food-delivery-api/internal/store"
)

// OrderService handles order placement and history.
type OrderService struct {
	store store.Store
	log   *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(st store.Store, log *slog.Logger) *OrderService {
	return &OrderService{store: st, log: log}
}

// PlaceOrder persists the order and then clears the placing user's cart.
// The total is stored as supplied by the caller; it is not recomputed from
// item prices. The cart clear is best-effort: if it fails after the order
// document is written, the order stands and the failure is only logged, so
// a crash in between can leave a placed order next to a non-empty cart.
func (s *OrderService) PlaceOrder(ctx context.Context, order models.Order) (string, error) {
	if !s.store.ValidID(order.RestaurantID) {
		return "", ErrInvalidID
	}

	order.CreatedAt = time.Now().UTC()

	id, err := s.store.Create(ctx, store.Orders, order)
	if err != nil {
		return "", err
	}

	if err := s.store.SetField(ctx, store.Carts, store.Filter{"user_id": order.UserID}, "items", []models.CartItem{}); err != nil {
		s.log.Warn("order placed but cart clear failed",
			"order_id", id,
			"user_id", order.UserID,
			"error", err,
		)
	}

	return id, nil
}

// ListOrders returns the user's orders, most recent first.
func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]store.Doc, error) {
	return s.store.List(ctx, store.Orders, store.Filter{"user_id": userID}, store.ListOptions{
		SortField: "created_at",
		SortDesc:  true,
	})
}
