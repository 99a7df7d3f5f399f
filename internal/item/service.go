package item

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service provides item-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new item service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create generates an id and stores a new item.
func (s *Service) Create(ctx context.Context, it *Item) error {
	if !it.Ownership.Valid() {
		return ErrInvalidOwnership
	}
	it.ID = uuid.New().String()
	now := time.Now().UTC()
	it.CreatedAt = now
	it.UpdatedAt = now
	return s.repo.Create(ctx, it)
}

// Get returns a single item by id.
func (s *Service) Get(ctx context.Context, id string) (Item, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces the stored record for it.ID with it.
func (s *Service) Update(ctx context.Context, it *Item) error {
	if !it.Ownership.Valid() {
		return ErrInvalidOwnership
	}
	it.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, it)
}

// Delete removes the item; the rating, status, and loans owned by it go with it.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
