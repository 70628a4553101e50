package service

import (
	"context"
	"fmt"

	"github.com/quickbite/food-delivery-api/internal/models"
	"github.com/quickbite/food-delivery-api/internal/store"
)

// Seeder loads sample restaurants and menu items for demos. Seeding is
// guarded by a pre-check, not a true upsert: it is skipped entirely when
// the restaurant collection already has documents.
type Seeder struct {
	catalog *CatalogService
	store   store.Store
}

// NewSeeder creates a new seeder.
func NewSeeder(catalog *CatalogService, st store.Store) *Seeder {
	return &Seeder{catalog: catalog, store: st}
}

// Seed inserts the sample data. Returns false when data already existed.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	n, err := s.store.Count(ctx, store.Restaurants, store.Filter{})
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	pizzeriaID, err := s.catalog.CreateRestaurant(ctx, models.Restaurant{
		Name:            "Sunset Pizzeria",
		Cuisine:         "Italian",
		ImageURL:        "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3",
		Rating:          4.6,
		DeliveryTimeMin: 30,
		DeliveryFee:     2.99,
		Address:         "123 Main St",
	})
	if err != nil {
		return false, err
	}

	curryID, err := s.catalog.CreateRestaurant(ctx, models.Restaurant{
		Name:            "Spice Garden",
		Cuisine:         "Indian",
		ImageURL:        "https://images.unsplash.com/photo-1544025162-d76694265947",
		Rating:          4.7,
		DeliveryTimeMin: 40,
		DeliveryFee:     3.49,
		Address:         "55 Curry Ave",
	})
	if err != nil {
		return false, err
	}

	items := []models.MenuItem{
		{RestaurantID: pizzeriaID, Name: "Margherita Pizza", Description: "Classic with fresh basil", Price: 12.5, ImageURL: "https://images.unsplash.com/photo-1548365328-9f547fb09556", IsVeg: true},
		{RestaurantID: pizzeriaID, Name: "Pepperoni Pizza", Description: "Spicy pepperoni, mozzarella", Price: 14.0, ImageURL: "https://images.unsplash.com/photo-1601924582971-b6e100ca9b3a"},
		{RestaurantID: curryID, Name: "Butter Chicken", Description: "Creamy and rich", Price: 13.75, ImageURL: "https://images.unsplash.com/photo-1567188040759-fb8a883dc6d8", SpicyLevel: 1},
		{RestaurantID: curryID, Name: "Paneer Tikka", Description: "Grilled cottage cheese", Price: 11.0, ImageURL: "https://images.unsplash.com/photo-1604908176997-43162d71db00", IsVeg: true, SpicyLevel: 2},
	}
	for _, item := range items {
		if _, err := s.catalog.CreateMenuItem(ctx, item); err != nil {
			return false, fmt.Errorf("seeding menu item %q: %w", item.Name, err)
		}
	}

	return true, nil
}
