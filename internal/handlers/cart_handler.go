package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quickbite/food-delivery-api/internal/models"
	"github.com/quickbite/food-delivery-api/internal/service"
)

// CartHandler handles per-user cart HTTP requests.
type CartHandler struct {
	cart *service.CartService
	log  *slog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cart *service.CartService, log *slog.Logger) *CartHandler {
	return &CartHandler{cart: cart, log: log}
}

// GetCart handles GET /api/cart/{userID}
// A first read creates an empty cart for the user.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	cart, err := h.cart.GetCart(r.Context(), userID)
	if err != nil {
		h.log.Error("failed to get cart", "user_id", userID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, cart, h.log)
}

// AddItem handles POST /api/cart/{userID}/add
// 400 on quantity < 1 or malformed menu item id, 404 when the menu item
// does not exist.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	cart, err := h.cart.AddItem(r.Context(), userID, item)
	if err != nil {
		switch err {
		case service.ErrInvalidQuantity:
			WriteError(w, http.StatusBadRequest, "Quantity must be at least 1", h.log)
		case service.ErrInvalidID:
			WriteError(w, http.StatusBadRequest, "Invalid id format", h.log)
		case service.ErrMenuItemNotFound:
			WriteError(w, http.StatusNotFound, "Menu item not found", h.log)
		default:
			h.log.Error("failed to add cart item", "user_id", userID, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	h.log.Info("cart item added", "user_id", userID, "menu_item_id", item.MenuItemID, "quantity", item.Quantity)
	WriteJSON(w, http.StatusOK, cart, h.log)
}

// ClearCart handles POST /api/cart/{userID}/clear
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	cart, err := h.cart.ClearCart(r.Context(), userID)
	if err != nil {
		h.log.Error("failed to clear cart", "user_id", userID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, cart, h.log)
}
