package models

import "errors"

var (
	ErrNameRequired    = errors.New("name is required")
	ErrCuisineRequired = errors.New("cuisine is required")
	ErrRatingRange     = errors.New("rating must be between 0 and 5")
	ErrDeliveryTime    = errors.New("delivery time must be between 5 and 120 minutes")
	ErrNegativeFee     = errors.New("delivery fee must not be negative")
)

// Restaurant is stored in the "restaurant" collection.
// Immutable after creation; there is no update endpoint.
type Restaurant struct {
	Name            string  `json:"name" bson:"name"`
	Cuisine         string  `json:"cuisine" bson:"cuisine"`
	ImageURL        string  `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Rating          float64 `json:"rating" bson:"rating"`
	DeliveryTimeMin int     `json:"delivery_time_min" bson:"delivery_time_min"`
	DeliveryFee     float64 `json:"delivery_fee" bson:"delivery_fee"`
	Address         string  `json:"address,omitempty" bson:"address,omitempty"`
}

// Validate checks field constraints. A zero delivery time is treated as
// unset and defaulted to 30 minutes.
func (r *Restaurant) Validate() error {
	if r.Name == "" {
		return ErrNameRequired
	}
	if r.Cuisine == "" {
		return ErrCuisineRequired
	}
	if r.Rating < 0 || r.Rating > 5 {
		return ErrRatingRange
	}
	if r.DeliveryTimeMin == 0 {
		r.DeliveryTimeMin = 30
	}
	if r.DeliveryTimeMin < 5 || r.DeliveryTimeMin > 120 {
		return ErrDeliveryTime
	}
	if r.DeliveryFee < 0 {
		return ErrNegativeFee
	}
	return nil
}
