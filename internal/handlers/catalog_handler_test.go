package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/quickbite/food-delivery-api/internal/models"
)

func TestCatalogHandler_CreateRestaurant(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		name           string
		body           any
		expectedStatus int
	}{
		{
			name: "valid restaurant",
			body: models.Restaurant{
				Name: "Sunset Pizzeria", Cuisine: "Italian", Rating: 4.6, DeliveryTimeMin: 30, DeliveryFee: 2.99,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing name",
			body:           models.Restaurant{Cuisine: "Italian"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "rating out of range",
			body: models.Restaurant{
				Name: "Bad", Cuisine: "Italian", Rating: 7,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "delivery time out of range",
			body: models.Restaurant{
				Name: "Slow", Cuisine: "Italian", DeliveryTimeMin: 600,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           "not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/restaurants", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.expectedStatus, w.Body.String())
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var created map[string]string
			decodeBody(t, w, &created)
			if created["id"] == "" {
				t.Error("restaurant id missing")
			}
		})
	}
}

func TestCatalogHandler_ListRestaurants(t *testing.T) {
	r, _ := newTestRouter(t)
	seedMenu(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/restaurants", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var restaurants []map[string]any
	decodeBody(t, w, &restaurants)
	if len(restaurants) != 1 {
		t.Fatalf("restaurants = %d, want 1", len(restaurants))
	}
	if restaurants[0]["id"] == "" || restaurants[0]["id"] == nil {
		t.Error("restaurant id missing from listing")
	}
	if restaurants[0]["name"] != "Sunset Pizzeria" {
		t.Errorf("name = %v, want Sunset Pizzeria", restaurants[0]["name"])
	}
}

func TestCatalogHandler_CreateMenuItem_Errors(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		name           string
		body           any
		expectedStatus int
	}{
		{
			name:           "malformed restaurant id",
			body:           models.MenuItem{RestaurantID: "nope", Name: "Dish", Price: 5},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown restaurant",
			body:           models.MenuItem{RestaurantID: uuid.NewString(), Name: "Dish", Price: 5},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "negative price",
			body:           models.MenuItem{RestaurantID: uuid.NewString(), Name: "Dish", Price: -1},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/menu", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.expectedStatus, w.Body.String())
			}
		})
	}
}

func TestCatalogHandler_ListMenu(t *testing.T) {
	r, _ := newTestRouter(t)
	restaurantID, _ := seedMenu(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/menu/"+restaurantID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var items []map[string]any
	decodeBody(t, w, &items)
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0]["name"] != "Margherita Pizza" {
		t.Errorf("name = %v, want Margherita Pizza", items[0]["name"])
	}

	w = doJSON(t, r, http.MethodGet, "/api/menu/not-an-id", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed id status = %d, want 400", w.Code)
	}
}

func TestCatalogHandler_Seed_Idempotent(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/seed", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("seed status = %d", w.Code)
	}
	var resp map[string]string
	decodeBody(t, w, &resp)
	if resp["message"] != "Seeded" {
		t.Errorf("message = %q, want Seeded", resp["message"])
	}

	// Second seed is a no-op
	w = doJSON(t, r, http.MethodPost, "/api/seed", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("second seed status = %d", w.Code)
	}
	decodeBody(t, w, &resp)
	if resp["message"] != "Data already exists" {
		t.Errorf("message = %q, want Data already exists", resp["message"])
	}

	var restaurants []map[string]any
	w = doJSON(t, r, http.MethodGet, "/api/restaurants", nil)
	decodeBody(t, w, &restaurants)
	if len(restaurants) != 2 {
		t.Errorf("restaurants after double seed = %d, want 2", len(restaurants))
	}
}

func TestStatusHandler(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("root status = %d", w.Code)
	}
	var root map[string]string
	decodeBody(t, w, &root)
	if root["message"] == "" {
		t.Error("root message missing")
	}

	w = doJSON(t, r, http.MethodGet, "/test", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("test status = %d", w.Code)
	}
	var diag map[string]any
	decodeBody(t, w, &diag)
	if diag["connection_status"] != "connected" {
		t.Errorf("connection_status = %v, want connected", diag["connection_status"])
	}
}
