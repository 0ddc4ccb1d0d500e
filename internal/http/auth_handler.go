package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"bookstore/internal/auth"
	"bookstore/internal/entity"
	"bookstore/internal/usecase"
)

const accessTokenTTL = 24 * time.Hour

// AuthHandler serves signup and login.
type AuthHandler struct {
	users  usecase.UserRepository
	secret string
}

func NewAuthHandler(users usecase.UserRepository, secret string) *AuthHandler {
	return &AuthHandler{
		users:  users,
		secret: secret,
	}
}

type signupRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Password  string `json:"password" validate:"required,min=8"`
	Pseudonym string `json:"pseudonym" validate:"required,max=100"`
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Pseudonym = strings.TrimSpace(req.Pseudonym)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		respondJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid input", "details": validationErrors})
		return
	}

	_, err := h.users.GetByUsername(r.Context(), req.Username)
	if err == nil {
		respondErrorMessage(w, http.StatusConflict, "username already exists")
		return
	}
	if !errors.Is(err, usecase.ErrNotFound) {
		respondErrorMessage(w, http.StatusInternalServerError, "server error")
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		respondErrorMessage(w, http.StatusInternalServerError, "server error")
		return
	}

	newUser := &entity.User{
		Username:  req.Username,
		Pseudonym: req.Pseudonym,
		Password:  hashedPassword,
	}
	if err := h.users.Create(r.Context(), newUser); err != nil {
		respondErrorMessage(w, http.StatusInternalServerError, "server error")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"id":        newUser.ID,
		"username":  newUser.Username,
		"pseudonym": newUser.Pseudonym,
	})
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		respondJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid input", "details": validationErrors})
		return
	}

	user, err := h.users.GetByUsername(r.Context(), strings.TrimSpace(req.Username))
	if err != nil || !auth.VerifyPassword(user.Password, req.Password) {
		respondErrorMessage(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := auth.GenerateToken(h.secret, user.ID, user.Username, accessTokenTTL)
	if err != nil {
		respondErrorMessage(w, http.StatusInternalServerError, "server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"accessToken": token})
}
