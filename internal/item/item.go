package item

import (
	"errors"
	"time"
)

// ErrNotFound is returned when an item is not found.
var ErrNotFound = errors.New("item not found")

// ErrInvalidOwnership is returned when an ownership status is outside the closed set.
var ErrInvalidOwnership = errors.New("invalid ownership status")

// OwnershipStatus is the closed set of ownership states for an item.
type OwnershipStatus string

const (
	OwnershipWantToBuy OwnershipStatus = "WANT_TO_BUY"
	OwnershipOwn       OwnershipStatus = "OWN"
	OwnershipSold      OwnershipStatus = "SOLD"
)

// Valid reports whether s is one of the known ownership states.
func (s OwnershipStatus) Valid() bool {
	switch s {
	case OwnershipWantToBuy, OwnershipOwn, OwnershipSold:
		return true
	}
	return false
}

// Item represents a book in the personal collection.
type Item struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	Description   string          `json:"description,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	ISBN          string          `json:"isbn,omitempty"`
	PublishedYear *int            `json:"published_year,omitempty"`
	PageCount     *int            `json:"page_count,omitempty"`
	Ownership     OwnershipStatus `json:"ownership_status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
