package models

import (
	"errors"
	"time"
)

const (
	StatusPlaced    = "placed"
	StatusPreparing = "preparing"
	StatusOnTheWay  = "on-the-way"
	StatusDelivered = "delivered"
)

var (
	ErrUserIDRequired  = errors.New("user_id is required")
	ErrAddressRequired = errors.New("address is required")
	ErrInvalidStatus   = errors.New("invalid order status")
)

// Order is stored in the "order" collection. It is an immutable record of
// history: items are copied from the cart at placement time and the total
// is taken from the caller as-is.
type Order struct {
	UserID       string     `json:"user_id" bson:"user_id"`
	RestaurantID string     `json:"restaurant_id" bson:"restaurant_id"`
	Items        []CartItem `json:"items" bson:"items"`
	Total        float64    `json:"total" bson:"total"`
	Status       string     `json:"status" bson:"status"`
	Address      string     `json:"address" bson:"address"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
}

// Validate checks field constraints and defaults an empty status to placed.
func (o *Order) Validate() error {
	if o.UserID == "" {
		return ErrUserIDRequired
	}
	if o.RestaurantID == "" {
		return ErrRestaurantIDRequired
	}
	if o.Address == "" {
		return ErrAddressRequired
	}
	switch o.Status {
	case "":
		o.Status = StatusPlaced
	case StatusPlaced, StatusPreparing, StatusOnTheWay, StatusDelivered:
	default:
		return ErrInvalidStatus
	}
	return nil
}
