package rating

import (
	"context"
	"errors"
	"time"
)

// Score bounds; a value outside them is a caller error, never clamped.
const (
	MinScore = 1
	MaxScore = 10
)

// ErrNotFound is returned when an item has no rating.
var ErrNotFound = errors.New("rating not found")

// ErrScoreOutOfRange is returned for a score outside [1,10].
var ErrScoreOutOfRange = errors.New("score must be between 1 and 10")

// Rating is the single optional rating record an item can carry.
type Rating struct {
	ItemID    string    `json:"item_id"`
	Score     int       `json:"score"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Repository defines the contract for rating storage.
type Repository interface {
	// Upsert creates the rating or overwrites score/notes in place.
	// Returns item.ErrNotFound when the item does not exist.
	Upsert(ctx context.Context, r *Rating) error
	GetByItem(ctx context.Context, itemID string) (Rating, error)
	Delete(ctx context.Context, itemID string) error
}

// Service provides rating business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Upsert validates the score range before touching storage.
func (s *Service) Upsert(ctx context.Context, itemID string, score int, notes string) error {
	if score < MinScore || score > MaxScore {
		return ErrScoreOutOfRange
	}
	return s.repo.Upsert(ctx, &Rating{ItemID: itemID, Score: score, Notes: notes})
}

func (s *Service) Get(ctx context.Context, itemID string) (Rating, error) {
	return s.repo.GetByItem(ctx, itemID)
}

func (s *Service) Delete(ctx context.Context, itemID string) error {
	return s.repo.Delete(ctx, itemID)
}
