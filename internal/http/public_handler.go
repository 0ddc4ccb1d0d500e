package http

import (
	"net/http"
	"strconv"
	"strings"
)

// PublicHandler serves the anonymous catalog surface.
type PublicHandler struct {
	svc BookAccess
}

func NewPublicHandler(svc BookAccess) *PublicHandler {
	return &PublicHandler{svc: svc}
}

// List handles GET /books?page&size&keyword.
func (h *PublicHandler) List(w http.ResponseWriter, r *http.Request) {
	books, total, err := h.svc.ListPublic(r.Context(), listParamsFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toPageResponse(books, total))
}

// Get handles GET /books/{id}.
func (h *PublicHandler) Get(w http.ResponseWriter, r *http.Request) {
	// crude path param extraction with net/http's ServeMux
	const prefix = "/books/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		http.NotFound(w, r)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, prefix)
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	book, err := h.svc.GetPublic(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBookResponse(book))
}
