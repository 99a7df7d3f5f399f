package item

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookshelf/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

type itemRequest struct {
	Title         string `json:"title" validate:"required,max=500"`
	Author        string `json:"author" validate:"required,max=500"`
	Description   string `json:"description"`
	Notes         string `json:"notes"`
	ISBN          string `json:"isbn" validate:"max=20"`
	PublishedYear *int   `json:"published_year"`
	PageCount     *int   `json:"page_count" validate:"omitempty,gte=1"`
	Ownership     string `json:"ownership_status" validate:"required,oneof=WANT_TO_BUY OWN SOLD"`
}

func (req *itemRequest) toItem() Item {
	return Item{
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		Notes:         req.Notes,
		ISBN:          req.ISBN,
		PublishedYear: req.PublishedYear,
		PageCount:     req.PageCount,
		Ownership:     OwnershipStatus(req.Ownership),
	}
}

// Create handles POST /books.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(&req); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	it := req.toItem()
	if err := h.svc.Create(r.Context(), &it); err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, r, it)
}

// Update handles PUT /books/{id}: a full-record replace.
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(&req); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	it := req.toItem()
	it.ID = id
	if err := h.svc.Update(r.Context(), &it); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccess(w, r, it, nil)
}

// Delete handles DELETE /books/{id}. The item's rating, status, and loan
// history are removed with it.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccessNoContent(w)
}
