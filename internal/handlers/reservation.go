package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tablebook/tablebook/internal/middleware"
	"github.com/tablebook/tablebook/internal/models"
	"github.com/tablebook/tablebook/internal/repo"
)

// ==========================
// Reservation Handler
// ==========================
type ReservationHandler struct {
	Repo           *repo.ReservationRepo
	RestaurantRepo *repo.RestaurantRepo
}

// ==========================
// Create Reservation (restaurant existence checked first)
// ==========================
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		JSONMessage(w, "invalid token", http.StatusForbidden)
		return
	}

	var input struct {
		RestaurantID    int    `json:"restaurant_id" validate:"required"`
		ReservationTime string `json:"reservation_time" validate:"required"`
		NumberOfPeople  int    `json:"number_of_people" validate:"required,gt=0"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONMessage(w, "invalid json", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(input); err != nil {
		JSONMessage(w, "all fields are required", http.StatusBadRequest)
		return
	}

	if _, err := h.RestaurantRepo.GetByID(r.Context(), input.RestaurantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			JSONMessage(w, "restaurant not found", http.StatusBadRequest)
			return
		}
		slog.Error("reservations: check restaurant", "err", err)
		JSONMessage(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	id, err := h.Repo.Create(r.Context(), userID, input.RestaurantID, input.ReservationTime, input.NumberOfPeople)
	if err != nil {
		slog.Error("reservations: create", "err", err)
		JSONMessage(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	JSONResponse(w, map[string]interface{}{
		"message":       "reservation created",
		"reservationId": id,
	}, http.StatusCreated)
}

// ==========================
// List Reservations (only the authenticated user's, joined with restaurant names)
// ==========================
func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		JSONMessage(w, "invalid token", http.StatusForbidden)
		return
	}

	reservations, err := h.Repo.ListForUser(r.Context(), userID)
	if err != nil {
		slog.Error("reservations: list", "err", err)
		JSONMessage(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	if reservations == nil {
		reservations = []models.UserReservation{}
	}
	JSONResponse(w, reservations, http.StatusOK)
}
