package models

import "time"

// CartItem is a denormalized snapshot of a menu item at add-time. Price and
// name do not track later changes to the source menu item.
type CartItem struct {
	RestaurantID string  `json:"restaurant_id" bson:"restaurant_id"`
	MenuItemID   string  `json:"menu_item_id" bson:"menu_item_id"`
	Name         string  `json:"name" bson:"name"`
	Price        float64 `json:"price" bson:"price"`
	Quantity     int     `json:"quantity" bson:"quantity"`
}

// Cart is stored in the "cart" collection, exactly one document per user id.
// Items keep insertion order; adding the same dish twice yields two entries.
type Cart struct {
	UserID    string     `json:"user_id" bson:"user_id"`
	Items     []CartItem `json:"items" bson:"items"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}
