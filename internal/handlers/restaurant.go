package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tablebook/tablebook/internal/models"
	"github.com/tablebook/tablebook/internal/repo"
)

// ==========================
// Restaurant Handler
// ==========================
type RestaurantHandler struct {
	Repo *repo.RestaurantRepo
}

// ==========================
// List Restaurants (public, full table, no ordering)
// ==========================
func (h *RestaurantHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Repo.List(r.Context())
	if err != nil {
		slog.Error("restaurants: list", "err", err)
		JSONMessage(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	JSONResponse(w, restaurants, http.StatusOK)
}

// ==========================
// Add Restaurant
// ==========================
func (h *RestaurantHandler) AddRestaurant(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name    string `json:"name" validate:"required"`
		Address string `json:"address" validate:"required"`
		Phone   string `json:"phone" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONMessage(w, "invalid json", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(input); err != nil {
		JSONMessage(w, "all fields are required", http.StatusBadRequest)
		return
	}

	id, err := h.Repo.Create(r.Context(), input.Name, input.Address, input.Phone)
	if err != nil {
		slog.Error("restaurants: create", "err", err)
		JSONMessage(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	JSONResponse(w, map[string]interface{}{
		"message":      "restaurant added",
		"restaurantId": id,
	}, http.StatusCreated)
}
