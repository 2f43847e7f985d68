package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tablebook/tablebook/internal/middleware"
	"github.com/tablebook/tablebook/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// ==========================
// Profile Handler
// ==========================
type ProfileHandler struct {
	UserRepo *repo.UserRepo
}

// ==========================
// Get Profile (identity comes from the token, password excluded)
// ==========================
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		JSONMessage(w, "invalid token", http.StatusForbidden)
		return
	}

	user, err := h.UserRepo.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			JSONMessage(w, "user not found", http.StatusNotFound)
			return
		}
		slog.Error("profile: get user", "err", err)
		JSONMessage(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	JSONResponse(w, user, http.StatusOK)
}

// ==========================
// Update Profile (password rewritten only when supplied)
// ==========================
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		JSONMessage(w, "invalid token", http.StatusForbidden)
		return
	}

	var input struct {
		Email    string `json:"email" validate:"required"`
		Name     string `json:"name" validate:"required"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONMessage(w, "invalid json", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(input); err != nil {
		JSONMessage(w, "all fields are required", http.StatusBadRequest)
		return
	}

	var passwordHash *string
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			JSONMessage(w, ErrMessageInternal, http.StatusInternalServerError)
			return
		}
		s := string(hash)
		passwordHash = &s
	}

	if err := h.UserRepo.UpdateProfile(r.Context(), userID, input.Email, input.Name, passwordHash); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			JSONMessage(w, "email already in use", http.StatusBadRequest)
			return
		}
		slog.Error("profile: update user", "err", err)
		JSONMessage(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	JSONMessage(w, "profile updated", http.StatusOK)
}
