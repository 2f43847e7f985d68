package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tablebook/tablebook/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	UserRepo    *repo.UserRepo
	Secret      []byte
	ExpireHours int
}

// ==========================
// Register (password stored as bcrypt hash)
// ==========================
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
		Email    string `json:"email" validate:"required"`
		Name     string `json:"name" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONMessage(w, "invalid json", http.StatusBadRequest)
		return
	}

	if err := validate.Struct(input); err != nil {
		JSONMessage(w, "all fields are required", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		JSONMessage(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	userID, err := h.UserRepo.Create(r.Context(), input.Username, string(hash), input.Email, input.Name)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			JSONMessage(w, "username or email already in use", http.StatusBadRequest)
			return
		}
		slog.Error("register: create user", "err", err)
		JSONMessage(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	JSONResponse(w, map[string]interface{}{
		"message": "user registered",
		"userId":  userID,
	}, http.StatusCreated)
}

// ==========================
// Login (verifies password, issues a bearer token)
// ==========================
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONMessage(w, "invalid json", http.StatusBadRequest)
		return
	}

	user, err := h.UserRepo.GetByUsername(r.Context(), input.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			JSONMessage(w, "user not found", http.StatusBadRequest)
			return
		}
		slog.Error("login: get user", "err", err)
		JSONMessage(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		JSONMessage(w, "invalid password", http.StatusBadRequest)
		return
	}

	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(time.Duration(h.ExpireHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.Secret)
	if err != nil {
		slog.Error("login: sign token", "err", err)
		JSONMessage(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	JSONResponse(w, map[string]interface{}{
		"message": "login successful",
		"token":   signed,
	}, http.StatusOK)
}
