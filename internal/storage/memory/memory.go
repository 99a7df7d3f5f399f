// Package memory is an in-memory implementation of the feature repositories.
// It backs tests and the USE_MEMORY_STORE mode, and mirrors the Postgres
// store's semantics, including the single-active-loan guard and the catalog
// sort policy (NULLS LAST, id tie-break).
package memory

import (
	"context"
	"sync"

	"bookshelf/internal/item"
	"bookshelf/internal/rating"
	"bookshelf/internal/status"

	"bookshelf/internal/loan"
)

// Store holds every table behind one lock. Sub-repositories share it.
type Store struct {
	mu       sync.RWMutex
	items    map[string]item.Item
	ratings  map[string]rating.Rating
	statuses map[string]status.Status
	loans    []loan.Loan
}

func NewStore() *Store {
	return &Store{
		items:    make(map[string]item.Item),
		ratings:  make(map[string]rating.Rating),
		statuses: make(map[string]status.Status),
	}
}

func (s *Store) Items() *ItemRepo       { return &ItemRepo{s} }
func (s *Store) Ratings() *RatingRepo   { return &RatingRepo{s} }
func (s *Store) Statuses() *StatusRepo  { return &StatusRepo{s} }
func (s *Store) Loans() *LoanRepo       { return &LoanRepo{s} }
func (s *Store) Catalog() *CatalogRepo  { return &CatalogRepo{s} }

type ItemRepo struct {
	store *Store
}

func (r *ItemRepo) Create(_ context.Context, it *item.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.items[it.ID] = *it
	return nil
}

func (r *ItemRepo) GetByID(_ context.Context, id string) (item.Item, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	it, ok := r.store.items[id]
	if !ok {
		return item.Item{}, item.ErrNotFound
	}
	return it, nil
}

func (r *ItemRepo) Update(_ context.Context, it *item.Item) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored, ok := r.store.items[it.ID]
	if !ok {
		return item.ErrNotFound
	}
	it.CreatedAt = stored.CreatedAt
	r.store.items[it.ID] = *it
	return nil
}

// Delete removes the item and cascades to its rating, status, and loans.
func (r *ItemRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.items[id]; !ok {
		return item.ErrNotFound
	}
	delete(r.store.items, id)
	delete(r.store.ratings, id)
	delete(r.store.statuses, id)

	kept := r.store.loans[:0]
	for _, l := range r.store.loans {
		if l.ItemID != id {
			kept = append(kept, l)
		}
	}
	r.store.loans = kept
	return nil
}

type RatingRepo struct {
	store *Store
}

func (r *RatingRepo) Upsert(_ context.Context, rec *rating.Rating) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.items[rec.ItemID]; !ok {
		return item.ErrNotFound
	}
	if existing, ok := r.store.ratings[rec.ItemID]; ok {
		rec.CreatedAt = existing.CreatedAt
	}
	r.store.ratings[rec.ItemID] = *rec
	return nil
}

func (r *RatingRepo) GetByItem(_ context.Context, itemID string) (rating.Rating, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rec, ok := r.store.ratings[itemID]
	if !ok {
		return rating.Rating{}, rating.ErrNotFound
	}
	return rec, nil
}

func (r *RatingRepo) Delete(_ context.Context, itemID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.ratings[itemID]; !ok {
		return rating.ErrNotFound
	}
	delete(r.store.ratings, itemID)
	return nil
}

type StatusRepo struct {
	store *Store
}

func (r *StatusRepo) Upsert(_ context.Context, rec *status.Status) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.items[rec.ItemID]; !ok {
		return item.ErrNotFound
	}
	if existing, ok := r.store.statuses[rec.ItemID]; ok {
		rec.CreatedAt = existing.CreatedAt
	}
	r.store.statuses[rec.ItemID] = *rec
	return nil
}

func (r *StatusRepo) GetByItem(_ context.Context, itemID string) (status.Status, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rec, ok := r.store.statuses[itemID]
	if !ok {
		return status.Status{}, status.ErrNotFound
	}
	return rec, nil
}

func (r *StatusRepo) Delete(_ context.Context, itemID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.statuses[itemID]; !ok {
		return status.ErrNotFound
	}
	delete(r.store.statuses, itemID)
	return nil
}
