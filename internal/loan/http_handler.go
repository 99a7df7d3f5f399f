package loan

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

type createLoanRequest struct {
	Borrower string `json:"borrower" validate:"required,max=200"`
}

// Create handles POST /books/{id}/loans. An item with an outstanding loan
// yields 409 naming the current borrower, whether the conflict was caught by
// the pre-check or by the store constraint.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")

	var req createLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(&req); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	created, err := h.svc.Create(r.Context(), itemID, req.Borrower)
	if err != nil {
		var conflict *ConflictError
		switch {
		case errors.As(err, &conflict):
			httpx.JSONError(w, r, http.StatusConflict, "CONFLICT", conflict.Error(), nil)
		case errors.Is(err, item.ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, ErrEmptyBorrower):
			httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccessCreated(w, r, created)
}

// Return handles POST /books/{id}/loans/return.
func (h *HTTPHandler) Return(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")

	if err := h.svc.Return(r.Context(), itemID); err != nil {
		switch {
		case errors.Is(err, ErrNoActiveLoan):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "No active loan for this book", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// History handles GET /books/{id}/loans: the full ledger, newest first.
func (h *HTTPHandler) History(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")

	loans, err := h.svc.History(r.Context(), itemID)
	if err != nil {
		switch {
		case errors.Is(err, item.ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	if loans == nil {
		loans = []Loan{}
	}
	httpx.JSONSuccess(w, r, loans, map[string]any{"total": len(loans)})
}

// Active handles GET /books/{id}/loans/active.
func (h *HTTPHandler) Active(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")

	l, err := h.svc.Active(r.Context(), itemID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoActiveLoan):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "No active loan for this book", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccess(w, r, l, nil)
}

// AllActive handles GET /loans/active: every outstanding loan, oldest first.
func (h *HTTPHandler) AllActive(w http.ResponseWriter, r *http.Request) {
	loans, err := h.svc.AllActive(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if loans == nil {
		loans = []ActiveLoan{}
	}
	httpx.JSONSuccess(w, r, loans, map[string]any{"total": len(loans)})
}
