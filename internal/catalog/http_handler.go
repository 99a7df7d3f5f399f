package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"bookshelf/internal/httpx"
	"bookshelf/internal/item"
)

type HTTPHandler struct {
	engine *Engine
}

func NewHTTPHandler(engine *Engine) *HTTPHandler {
	return &HTTPHandler{engine: engine}
}

// List handles GET /books. Out-of-range paging values and unknown sort
// fields are normalized by the engine, never rejected.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	pageSize := DefaultPageSize
	if raw := query.Get("page_size"); raw != "" {
		pageSize, _ = strconv.Atoi(raw)
	}

	q := Query{
		Page:     page,
		PageSize: pageSize,
		SortBy:   query.Get("sort_by"),
		SortDir:  query.Get("sort_dir"),
	}

	result, err := h.engine.ListPaginated(r.Context(), q)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, result.Items, map[string]any{
		"page":        result.Page,
		"page_size":   result.PageSize,
		"total":       result.TotalCount,
		"total_pages": (result.TotalCount + result.PageSize - 1) / result.PageSize,
	})
}

// ListAll handles GET /books/all: the whole collection, unpaginated.
func (h *HTTPHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	views, err := h.engine.ListAll(r.Context())
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if views == nil {
		views = []View{}
	}
	httpx.JSONSuccess(w, r, views, map[string]any{"total": len(views)})
}

// Get handles GET /books/{id}.
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	view, err := h.engine.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, item.ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccess(w, r, view, nil)
}
