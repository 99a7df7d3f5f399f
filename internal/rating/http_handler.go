package rating

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookshelf/internal/httpx"
	"bookshelf/internal/item"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

type upsertRatingRequest struct {
	Score int    `json:"score" validate:"gte=1,lte=10"`
	Notes string `json:"notes"`
}

// Put handles PUT /books/{id}/rating: create or overwrite in place.
func (h *HTTPHandler) Put(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")

	var req upsertRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(&req); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	if err := h.svc.Upsert(r.Context(), itemID, req.Score, req.Notes); err != nil {
		switch {
		case errors.Is(err, ErrScoreOutOfRange):
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		case errors.Is(err, item.ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{
		"item_id": itemID,
		"score":   req.Score,
		"notes":   req.Notes,
	}, nil)
}

// Delete handles DELETE /books/{id}/rating.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")

	if err := h.svc.Delete(r.Context(), itemID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Rating not found", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccessNoContent(w)
}
