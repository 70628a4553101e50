package service

import (
	"context"
	"errors"

	"github.com/quickbite/food-delivery-api/internal/models"
	"github.com/quickbite/food-delivery-api/internal/store"
)

var (
	ErrInvalidID          = errors.New("invalid id format")
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

const restaurantListLimit = 50

// CatalogService handles restaurant and menu item creation and listing.
type CatalogService struct {
	store store.Store
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(st store.Store) *CatalogService {
	return &CatalogService{store: st}
}

// CreateRestaurant inserts a restaurant and returns its id.
func (s *CatalogService) CreateRestaurant(ctx context.Context, r models.Restaurant) (string, error) {
	return s.store.Create(ctx, store.Restaurants, r)
}

// ListRestaurants returns up to 50 restaurants, each with an external id.
func (s *CatalogService) ListRestaurants(ctx context.Context) ([]store.Doc, error) {
	return s.store.List(ctx, store.Restaurants, store.Filter{}, store.ListOptions{
		Limit: restaurantListLimit,
	})
}

// CreateMenuItem inserts a menu item after checking that the referenced
// restaurant exists. Returns ErrInvalidID for a malformed restaurant id and
// ErrRestaurantNotFound when the restaurant is absent; nothing is persisted
// on failure.
func (s *CatalogService) CreateMenuItem(ctx context.Context, item models.MenuItem) (string, error) {
	_, err := s.store.FindByID(ctx, store.Restaurants, item.RestaurantID)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return "", ErrInvalidID
	case errors.Is(err, store.ErrNoDocument):
		return "", ErrRestaurantNotFound
	case err != nil:
		return "", err
	}

	return s.store.Create(ctx, store.MenuItems, item)
}

// ListMenu returns the menu items of a restaurant. An unknown but
// well-formed restaurant id yields an empty list, not an error.
func (s *CatalogService) ListMenu(ctx context.Context, restaurantID string) ([]store.Doc, error) {
	if !s.store.ValidID(restaurantID) {
		return nil, ErrInvalidID
	}
	return s.store.List(ctx, store.MenuItems, store.Filter{"restaurant_id": restaurantID}, store.ListOptions{})
}
