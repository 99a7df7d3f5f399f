package status

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when an item has no reading status.
var ErrNotFound = errors.New("reading status not found")

// ErrInvalidStatus is returned for a status outside the closed set.
var ErrInvalidStatus = errors.New("invalid reading status")

// ReadingStatus is the closed set of reading-progress states.
type ReadingStatus string

const (
	StatusBacklog   ReadingStatus = "BACKLOG"
	StatusCompleted ReadingStatus = "COMPLETED"
	StatusAbandoned ReadingStatus = "ABANDONED"
)

// Valid reports whether s is one of the known reading states.
func (s ReadingStatus) Valid() bool {
	switch s {
	case StatusBacklog, StatusCompleted, StatusAbandoned:
		return true
	}
	return false
}

// Status is the single optional reading-progress record an item can carry.
type Status struct {
	ItemID    string        `json:"item_id"`
	Status    ReadingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Repository defines the contract for status storage.
type Repository interface {
	// Upsert creates the status or overwrites it in place.
	// Returns item.ErrNotFound when the item does not exist.
	Upsert(ctx context.Context, s *Status) error
	GetByItem(ctx context.Context, itemID string) (Status, error)
	Delete(ctx context.Context, itemID string) error
}

// Service provides reading-status business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Upsert(ctx context.Context, itemID string, st ReadingStatus) error {
	if !st.Valid() {
		return ErrInvalidStatus
	}
	return s.repo.Upsert(ctx, &Status{ItemID: itemID, Status: st})
}

func (s *Service) Get(ctx context.Context, itemID string) (Status, error) {
	return s.repo.GetByItem(ctx, itemID)
}

func (s *Service) Delete(ctx context.Context, itemID string) error {
	return s.repo.Delete(ctx, itemID)
}
