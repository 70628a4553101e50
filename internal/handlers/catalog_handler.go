package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quickbite/food-delivery-api/internal/models"
	"github.com/quickbite/food-delivery-api/internal/service"
)

// CatalogHandler handles restaurant and menu HTTP requests, plus demo data
// seeding.
type CatalogHandler struct {
	catalog *service.CatalogService
	seeder  *service.Seeder
	log     *slog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalog *service.CatalogService, seeder *service.Seeder, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		seeder:  seeder,
		log:     log,
	}
}

// CreateRestaurant handles POST /api/restaurants
func (h *CatalogHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	var restaurant models.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&restaurant); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if err := restaurant.Validate(); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	id, err := h.catalog.CreateRestaurant(r.Context(), restaurant)
	if err != nil {
		h.log.Error("failed to create restaurant", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("restaurant created", "restaurant_id", id, "name", restaurant.Name)
	WriteJSON(w, http.StatusOK, map[string]string{"id": id}, h.log)
}

// ListRestaurants handles GET /api/restaurants
func (h *CatalogHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.catalog.ListRestaurants(r.Context())
	if err != nil {
		h.log.Error("failed to list restaurants", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, restaurants, h.log)
}

// CreateMenuItem handles POST /api/menu
// 400 on a malformed restaurant id, 404 when the restaurant does not exist.
func (h *CatalogHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if err := item.Validate(); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	id, err := h.catalog.CreateMenuItem(r.Context(), item)
	if err != nil {
		switch err {
		case service.ErrInvalidID:
			WriteError(w, http.StatusBadRequest, "Invalid id format", h.log)
		case service.ErrRestaurantNotFound:
			WriteError(w, http.StatusNotFound, "Restaurant not found", h.log)
		default:
			h.log.Error("failed to create menu item", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	h.log.Info("menu item created", "menu_item_id", id, "restaurant_id", item.RestaurantID)
	WriteJSON(w, http.StatusOK, map[string]string{"id": id}, h.log)
}

// ListMenu handles GET /api/menu/{restaurantID}
func (h *CatalogHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "restaurantID")

	items, err := h.catalog.ListMenu(r.Context(), restaurantID)
	if err != nil {
		switch err {
		case service.ErrInvalidID:
			WriteError(w, http.StatusBadRequest, "Invalid id format", h.log)
		default:
			h.log.Error("failed to list menu", "restaurant_id", restaurantID, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, items, h.log)
}

// Seed handles POST /api/seed
func (h *CatalogHandler) Seed(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.seeder.Seed(r.Context())
	if err != nil {
		h.log.Error("failed to seed sample data", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	message := "Data already exists"
	if seeded {
		message = "Seeded"
		h.log.Info("sample data seeded")
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": message}, h.log)
}
