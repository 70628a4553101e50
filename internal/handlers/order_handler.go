package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quickbite/food-delivery-api/internal/models"
	"github.com/quickbite/food-delivery-api/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orders *service.OrderService
	log    *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, log: log}
}

// PlaceOrder handles POST /api/orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if err := order.Validate(); err != nil {
		WriteError(w, http.StatusBadRequest, err.Error(), h.log)
		return
	}

	id, err := h.orders.PlaceOrder(r.Context(), order)
	if err != nil {
		switch err {
		case service.ErrInvalidID:
			WriteError(w, http.StatusBadRequest, "Invalid id format", h.log)
		default:
			h.log.Error("failed to place order", "user_id", order.UserID, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	h.log.Info("order placed", "order_id", id, "user_id", order.UserID, "items_count", len(order.Items))
	WriteJSON(w, http.StatusOK, map[string]string{
		"id":     id,
		"status": models.StatusPlaced,
	}, h.log)
}

// ListOrders handles GET /api/orders/{userID}
// Orders come back most recent first.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	orders, err := h.orders.ListOrders(r.Context(), userID)
	if err != nil {
		h.log.Error("failed to list orders", "user_id", userID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, orders, h.log)
}
