package status

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

type upsertStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=BACKLOG COMPLETED ABANDONED"`
}

// Put handles PUT /books/{id}/status: create or overwrite in place.
func (h *HTTPHandler) Put(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")

	var req upsertStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(&req); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	if err := h.svc.Upsert(r.Context(), itemID, ReadingStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
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
		"status":  req.Status,
	}, nil)
}

// Delete handles DELETE /books/{id}/status.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")

	if err := h.svc.Delete(r.Context(), itemID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Reading status not found", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccessNoContent(w)
}
