package handlers

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/quickbite/food-delivery-api/internal/store"
)

const maxDiagnosticCollections = 10

// StatusHandler serves the root message and the database diagnostics
// endpoint.
type StatusHandler struct {
	store store.Store
	log   *slog.Logger
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(st store.Store, log *slog.Logger) *StatusHandler {
	return &StatusHandler{store: st, log: log}
}

// Root handles GET /
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Food Delivery API is running",
	}, h.log)
}

// Test handles GET /test and reports backend and database health.
func (h *StatusHandler) Test(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"backend":           "running",
		"database":          "not available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if h.store == nil {
		WriteJSON(w, http.StatusOK, response, h.log)
		return
	}

	response["database"] = "available"
	if os.Getenv("MONGO_URI") != "" {
		response["database_url"] = "set"
	} else {
		response["database_url"] = "not set"
	}
	response["database_name"] = h.store.Name()

	if err := h.store.Ping(r.Context()); err != nil {
		response["connection_status"] = "error: " + err.Error()
		WriteJSON(w, http.StatusOK, response, h.log)
		return
	}
	response["connection_status"] = "connected"

	names, err := h.store.Collections(r.Context())
	if err != nil {
		response["database"] = "connected but error: " + err.Error()
		WriteJSON(w, http.StatusOK, response, h.log)
		return
	}
	if len(names) > maxDiagnosticCollections {
		names = names[:maxDiagnosticCollections]
	}
	response["collections"] = names
	response["database"] = "connected and working"

	WriteJSON(w, http.StatusOK, response, h.log)
}
