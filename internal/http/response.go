package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookstore/internal/usecase"
)

func respondJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

func respondErrorMessage(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"error": message})
}

// respondError maps service failures to statuses. A valid token whose user
// row no longer exists is a 404, not a 401.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		respondErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrUnauthenticated):
		respondErrorMessage(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, usecase.ErrForbidden):
		respondErrorMessage(w, http.StatusForbidden, "you are not authorized to access this resource")
	case errors.Is(err, usecase.ErrCurrentUserMissing):
		respondErrorMessage(w, http.StatusNotFound, "current user not found")
	case errors.Is(err, usecase.ErrNotFound):
		respondErrorMessage(w, http.StatusNotFound, "book not found")
	default:
		respondErrorMessage(w, http.StatusInternalServerError, "server error")
	}
}
