package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bookstore/internal/httpx"
	"bookstore/internal/usecase"
)

const coverImageSuffix = "/update-cover-image"

// maxCoverMemory bounds the in-memory part of multipart parsing; larger
// uploads spill to temp files.
const maxCoverMemory = 32 << 20

// BookHandler serves the author-scoped surface under /api/v1/books. The auth
// middleware has already attached the principal; every call passes it into
// the service explicitly.
type BookHandler struct {
	svc BookAccess
}

func NewBookHandler(svc BookAccess) *BookHandler {
	return &BookHandler{svc: svc}
}

// Collection handles GET (list own) and POST (publish) on /api/v1/books.
func (h *BookHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Item handles /api/v1/books/{id} and /api/v1/books/{id}/update-cover-image.
func (h *BookHandler) Item(w http.ResponseWriter, r *http.Request) {
	const prefix = "/api/v1/books/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		http.NotFound(w, r)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, prefix)

	if strings.HasSuffix(rest, coverImageSuffix) {
		id, err := strconv.ParseInt(strings.TrimSuffix(rest, coverImageSuffix), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.updateCover(w, r, id)
		return
	}

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *BookHandler) list(w http.ResponseWriter, r *http.Request) {
	books, total, err := h.svc.ListMine(r.Context(), httpx.UsernameFrom(r), listParamsFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toPageResponse(books, total))
}

func (h *BookHandler) get(w http.ResponseWriter, r *http.Request, id int64) {
	book, err := h.svc.GetOwned(r.Context(), httpx.UsernameFrom(r), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBookResponse(book))
}

type createBookForm struct {
	Title       string   `validate:"required,max=255"`
	Description string   `validate:"max=4000"`
	Price       *float64 `validate:"omitempty,gte=0"`
}

func (h *BookHandler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxCoverMemory); err != nil {
		respondErrorMessage(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	form := createBookForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}
	if raw := r.FormValue("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondErrorMessage(w, http.StatusBadRequest, "invalid price")
			return
		}
		form.Price = &price
	}

	if validationErrors := ValidateStruct(form); len(validationErrors) > 0 {
		respondJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid input", "details": validationErrors})
		return
	}

	params := usecase.CreateBookParams{
		Title:       form.Title,
		Description: form.Description,
		Price:       form.Price,
	}

	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		params.Cover = &usecase.CoverUpload{
			Filename: header.Filename,
			Data:     file,
		}
	case errors.Is(err, http.ErrMissingFile):
		// cover is optional
	default:
		respondErrorMessage(w, http.StatusBadRequest, "invalid cover file")
		return
	}

	book, err := h.svc.Create(r.Context(), httpx.UsernameFrom(r), params)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toBookResponse(book))
}

type updateBookRequest struct {
	Title          string   `json:"title" validate:"required,max=255"`
	Description    string   `json:"description" validate:"max=4000"`
	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	CoverImagePath *string  `json:"coverImagePath"`
}

// update replaces all mutable fields wholesale; fields omitted from the body
// are cleared on the record, not preserved.
func (h *BookHandler) update(w http.ResponseWriter, r *http.Request, id int64) {
	var req updateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		respondJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid input", "details": validationErrors})
		return
	}

	book, err := h.svc.Update(r.Context(), httpx.UsernameFrom(r), id, usecase.UpdateBookParams{
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		CoverImagePath: req.CoverImagePath,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBookResponse(book))
}

func (h *BookHandler) updateCover(w http.ResponseWriter, r *http.Request, id int64) {
	if err := r.ParseMultipartForm(maxCoverMemory); err != nil {
		respondErrorMessage(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondErrorMessage(w, http.StatusBadRequest, "cover file is required")
		return
	}
	defer file.Close()

	book, err := h.svc.ReplaceCover(r.Context(), httpx.UsernameFrom(r), id, usecase.CoverUpload{
		Filename: header.Filename,
		Data:     file,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBookResponse(book))
}

func (h *BookHandler) delete(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.svc.Delete(r.Context(), httpx.UsernameFrom(r), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
