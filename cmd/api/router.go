package main

import (
	"net/http"

	"bookshelf/internal/catalog"
	"bookshelf/internal/item"
	"bookshelf/internal/loan"
	"bookshelf/internal/rating"
	"bookshelf/internal/status"
)

type handlers struct {
	items   *item.HTTPHandler
	catalog *catalog.HTTPHandler
	ratings *rating.HTTPHandler
	status  *status.HTTPHandler
	loans   *loan.HTTPHandler
}

func newRouter(h handlers, ready http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", ready)

	mux.HandleFunc("GET /books", h.catalog.List)
	mux.HandleFunc("GET /books/all", h.catalog.ListAll)
	mux.HandleFunc("GET /books/{id}", h.catalog.Get)

	mux.HandleFunc("POST /books", h.items.Create)
	mux.HandleFunc("PUT /books/{id}", h.items.Update)
	mux.HandleFunc("DELETE /books/{id}", h.items.Delete)

	mux.HandleFunc("PUT /books/{id}/rating", h.ratings.Put)
	mux.HandleFunc("DELETE /books/{id}/rating", h.ratings.Delete)

	mux.HandleFunc("PUT /books/{id}/status", h.status.Put)
	mux.HandleFunc("DELETE /books/{id}/status", h.status.Delete)

	mux.HandleFunc("POST /books/{id}/loans", h.loans.Create)
	mux.HandleFunc("POST /books/{id}/loans/return", h.loans.Return)
	mux.HandleFunc("GET /books/{id}/loans", h.loans.History)
	mux.HandleFunc("GET /books/{id}/loans/active", h.loans.Active)
	mux.HandleFunc("GET /loans/active", h.loans.AllActive)

	return mux
}
