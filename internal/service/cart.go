package service

import (
	"context"
	"errors"
	"time"

	"github.com/quickbite/food-delivery-api/internal/models"
	"github.com/quickbite/food-delivery-api/internal/store"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// CartService manages the single per-user cart. Carts are created lazily on
// first access and never deleted.
type CartService struct {
	store store.Store
}

// NewCartService creates a new cart service.
func NewCartService(st store.Store) *CartService {
	return &CartService{store: st}
}

// GetCart returns the user's cart, creating an empty one if absent. The
// create is an atomic insert-if-absent: concurrent first reads for the same
// user end up with a single cart document.
func (s *CartService) GetCart(ctx context.Context, userID string) (store.Doc, error) {
	filter := store.Filter{"user_id": userID}

	cart, err := s.store.FindOne(ctx, store.Carts, filter)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, store.ErrNoDocument) {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.store.EnsureOne(ctx, store.Carts, filter, store.Doc{
		"user_id":    userID,
		"items":      []models.CartItem{},
		"created_at": now,
		"updated_at": now,
	}); err != nil {
		return nil, err
	}
	return s.store.FindOne(ctx, store.Carts, filter)
}

// AddItem appends item to the user's cart, creating the cart if absent.
// The append is unconditional: adding the same dish twice yields two line
// entries. Returns the full updated cart.
func (s *CartService) AddItem(ctx context.Context, userID string, item models.CartItem) (store.Doc, error) {
	if item.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	_, err := s.store.FindByID(ctx, store.MenuItems, item.MenuItemID)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return nil, ErrInvalidID
	case errors.Is(err, store.ErrNoDocument):
		return nil, ErrMenuItemNotFound
	case err != nil:
		return nil, err
	}

	filter := store.Filter{"user_id": userID}
	now := time.Now().UTC()
	if err := s.store.UpsertPush(ctx, store.Carts, filter, store.Doc{
		"user_id":    userID,
		"created_at": now,
	}, "items", item); err != nil {
		return nil, err
	}
	if err := s.store.SetField(ctx, store.Carts, filter, "updated_at", now); err != nil {
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

// ClearCart empties the user's cart and returns it. A missing cart is
// created empty by the subsequent read.
func (s *CartService) ClearCart(ctx context.Context, userID string) (store.Doc, error) {
	filter := store.Filter{"user_id": userID}
	if err := s.store.SetField(ctx, store.Carts, filter, "items", []models.CartItem{}); err != nil {
		return nil, err
	}
	if err := s.store.SetField(ctx, store.Carts, filter, "updated_at", time.Now().UTC()); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}
