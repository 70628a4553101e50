package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/quickbite/food-delivery-api/internal/models"
	"github.com/quickbite/food-delivery-api/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOrderService_PlaceOrder_ClearsCart(t *testing.T) {
	st := store.NewMemoryStore()
	cartService, restaurantID, menuItemID := newMenuFixture(t, st)
	orderService := NewOrderService(st, discardLogger())
	ctx := context.Background()

	item := models.CartItem{
		RestaurantID: restaurantID,
		MenuItemID:   menuItemID,
		Name:         "Margherita Pizza",
		Price:        12.5,
		Quantity:     2,
	}
	if _, err := cartService.AddItem(ctx, "u1", item); err != nil {
		t.Fatalf("AddItem() unexpected error = %v", err)
	}

	id, err := orderService.PlaceOrder(ctx, models.Order{
		UserID:       "u1",
		RestaurantID: restaurantID,
		Items:        []models.CartItem{item},
		Total:        25.0,
		Status:       models.StatusPlaced,
		Address:      "42 Hungry Lane",
	})
	if err != nil {
		t.Fatalf("PlaceOrder() unexpected error = %v", err)
	}
	if id == "" {
		t.Fatal("PlaceOrder() returned empty id")
	}

	// The order keeps the caller-supplied total untouched
	order, err := st.FindByID(ctx, store.Orders, id)
	if err != nil {
		t.Fatalf("FindByID() unexpected error = %v", err)
	}
	if order["total"] != 25.0 {
		t.Errorf("order total = %v, want 25.0", order["total"])
	}
	if order["status"] != models.StatusPlaced {
		t.Errorf("order status = %v, want placed", order["status"])
	}

	// Placement empties the user's cart
	cart, err := cartService.GetCart(ctx, "u1")
	if err != nil {
		t.Fatalf("GetCart() unexpected error = %v", err)
	}
	if len(cartItems(t, cart)) != 0 {
		t.Error("cart not empty after PlaceOrder()")
	}
}

func TestOrderService_PlaceOrder_TotalNotRecomputed(t *testing.T) {
	st := store.NewMemoryStore()
	_, restaurantID, menuItemID := newMenuFixture(t, st)
	orderService := NewOrderService(st, discardLogger())
	ctx := context.Background()

	// Total deliberately disagrees with price*quantity; the service must
	// store it as given.
	id, err := orderService.PlaceOrder(ctx, models.Order{
		UserID:       "u1",
		RestaurantID: restaurantID,
		Items:        []models.CartItem{{RestaurantID: restaurantID, MenuItemID: menuItemID, Name: "Margherita Pizza", Price: 12.5, Quantity: 1}},
		Total:        999.99,
		Address:      "42 Hungry Lane",
	})
	if err != nil {
		t.Fatalf("PlaceOrder() unexpected error = %v", err)
	}

	order, err := st.FindByID(ctx, store.Orders, id)
	if err != nil {
		t.Fatalf("FindByID() unexpected error = %v", err)
	}
	if order["total"] != 999.99 {
		t.Errorf("order total = %v, want the caller-supplied 999.99", order["total"])
	}
}

func TestOrderService_PlaceOrder_InvalidRestaurantID(t *testing.T) {
	st := store.NewMemoryStore()
	orderService := NewOrderService(st, discardLogger())
	ctx := context.Background()

	_, err := orderService.PlaceOrder(ctx, models.Order{
		UserID:       "u1",
		RestaurantID: "not-an-id",
		Total:        10,
		Address:      "42 Hungry Lane",
	})
	if err != ErrInvalidID {
		t.Errorf("PlaceOrder() error = %v, want ErrInvalidID", err)
	}

	n, _ := st.Count(ctx, store.Orders, store.Filter{})
	if n != 0 {
		t.Errorf("order persisted despite invalid restaurant id, count = %d", n)
	}
}

// clearFailStore fails SetField on the cart collection, simulating a store
// failure between order insert and cart clear.
type clearFailStore struct {
	store.Store
}

func (s *clearFailStore) SetField(ctx context.Context, collection string, filter store.Filter, field string, value any) error {
	if collection == store.Carts {
		return errors.New("store unavailable")
	}
	return s.Store.SetField(ctx, collection, filter, field, value)
}

func TestOrderService_PlaceOrder_CartClearBestEffort(t *testing.T) {
	mem := store.NewMemoryStore()
	cartService, restaurantID, menuItemID := newMenuFixture(t, mem)
	orderService := NewOrderService(&clearFailStore{Store: mem}, discardLogger())
	ctx := context.Background()

	item := models.CartItem{RestaurantID: restaurantID, MenuItemID: menuItemID, Name: "Margherita Pizza", Price: 12.5, Quantity: 1}
	if _, err := cartService.AddItem(ctx, "u1", item); err != nil {
		t.Fatalf("AddItem() unexpected error = %v", err)
	}

	// The order stands even though the cart clear failed
	id, err := orderService.PlaceOrder(ctx, models.Order{
		UserID:       "u1",
		RestaurantID: restaurantID,
		Items:        []models.CartItem{item},
		Total:        12.5,
		Address:      "42 Hungry Lane",
	})
	if err != nil {
		t.Fatalf("PlaceOrder() unexpected error = %v", err)
	}
	if _, err := mem.FindByID(ctx, store.Orders, id); err != nil {
		t.Errorf("placed order not found: %v", err)
	}

	cart, err := cartService.GetCart(ctx, "u1")
	if err != nil {
		t.Fatalf("GetCart() unexpected error = %v", err)
	}
	if len(cartItems(t, cart)) != 1 {
		t.Error("cart unexpectedly cleared despite SetField failure")
	}
}

func TestOrderService_ListOrders_NewestFirst(t *testing.T) {
	st := store.NewMemoryStore()
	orderService := NewOrderService(st, discardLogger())
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	totals := []float64{10, 20, 30}
	for i, total := range totals {
		_, err := st.Create(ctx, store.Orders, store.Doc{
			"user_id":    "u1",
			"total":      total,
			"status":     models.StatusPlaced,
			"created_at": base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("Create() unexpected error = %v", err)
		}
	}
	if _, err := st.Create(ctx, store.Orders, store.Doc{"user_id": "someone-else", "created_at": base}); err != nil {
		t.Fatalf("Create() unexpected error = %v", err)
	}

	orders, err := orderService.ListOrders(ctx, "u1")
	if err != nil {
		t.Fatalf("ListOrders() unexpected error = %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("ListOrders() returned %d orders, want 3", len(orders))
	}

	for i := 0; i < len(orders)-1; i++ {
		cur := orders[i]["created_at"].(primitive.DateTime)
		next := orders[i+1]["created_at"].(primitive.DateTime)
		if cur < next {
			t.Errorf("orders[%d] older than orders[%d], want newest first", i, i+1)
		}
	}
	if orders[0]["total"] != 30.0 {
		t.Errorf("first order total = %v, want the most recent (30)", orders[0]["total"])
	}
}
