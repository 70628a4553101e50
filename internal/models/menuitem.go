package models

import "errors"

var (
	ErrRestaurantIDRequired = errors.New("restaurant_id is required")
	ErrNegativePrice        = errors.New("price must not be negative")
	ErrSpicyLevelRange      = errors.New("spicy level must be between 0 and 3")
)

// MenuItem is stored in the "menuitem" collection. It belongs to exactly
// one restaurant, referenced by id string.
type MenuItem struct {
	RestaurantID string  `json:"restaurant_id" bson:"restaurant_id"`
	Name         string  `json:"name" bson:"name"`
	Description  string  `json:"description,omitempty" bson:"description,omitempty"`
	Price        float64 `json:"price" bson:"price"`
	ImageURL     string  `json:"image_url,omitempty" bson:"image_url,omitempty"`
	IsVeg        bool    `json:"is_veg" bson:"is_veg"`
	SpicyLevel   int     `json:"spicy_level" bson:"spicy_level"`
}

func (m *MenuItem) Validate() error {
	if m.RestaurantID == "" {
		return ErrRestaurantIDRequired
	}
	if m.Name == "" {
		return ErrNameRequired
	}
	if m.Price < 0 {
		return ErrNegativePrice
	}
	if m.SpicyLevel < 0 || m.SpicyLevel > 3 {
		return ErrSpicyLevelRange
	}
	return nil
}
