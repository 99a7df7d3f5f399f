package item

import (
	"context"
)

// Repository defines the contract for item storage.
type Repository interface {
	Create(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id string) (Item, error)
	// Update replaces the full record; returns ErrNotFound if the id is unknown.
	Update(ctx context.Context, it *Item) error
	// Delete removes the item and, via the store's cascade, its rating,
	// status, and loan history.
	Delete(ctx context.Context, id string) error
}
