package catalog

import (
	"time"

	"bookshelf/internal/item"
	"bookshelf/internal/status"
)

// Sort fields accepted by ListPaginated. Anything else silently falls back
// to title; that fallback is deliberate behavior, not an error.
const (
	SortTitle     = "title"
	SortAuthor    = "author"
	SortScore     = "score"
	SortOwnership = "ownership"
	SortStatus    = "status"
	SortBorrower  = "borrower"
)

const (
	DirAsc  = "asc"
	DirDesc = "desc"
)

const (
	MinPageSize     = 1
	MaxPageSize     = 100
	DefaultPageSize = 20
)

// View is the flattened projection of an item joined with its optional
// rating, optional reading status, and the borrower/date of its active loan.
// Nil pointer fields mean the related record is absent.
type View struct {
	ID            string                `json:"id"`
	Title         string                `json:"title"`
	Author        string                `json:"author"`
	Description   string                `json:"description,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	ISBN          string                `json:"isbn,omitempty"`
	PublishedYear *int                  `json:"published_year,omitempty"`
	PageCount     *int                  `json:"page_count,omitempty"`
	Ownership     item.OwnershipStatus  `json:"ownership_status"`
	Score         *int                  `json:"score,omitempty"`
	RatingNotes   *string               `json:"rating_notes,omitempty"`
	Status        *status.ReadingStatus `json:"status,omitempty"`
	Borrower      *string               `json:"borrower,omitempty"`
	LoanedAt      *time.Time            `json:"loaned_at,omitempty"`
}

// Query carries pagination and sort parameters for ListPaginated.
type Query struct {
	Page     int
	PageSize int
	SortBy   string
	SortDir  string
}

// Normalize clamps and defaults the query in place of rejecting it: page to
// >=1, page size to [MinPageSize,MaxPageSize], unknown sort fields to title,
// unknown directions to asc.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < MinPageSize {
		q.PageSize = MinPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	switch q.SortBy {
	case SortTitle, SortAuthor, SortScore, SortOwnership, SortStatus, SortBorrower:
	default:
		q.SortBy = SortTitle
	}
	if q.SortDir != DirDesc {
		q.SortDir = DirAsc
	}
	return q
}

// Page is one window of the catalog. TotalCount is the size of the whole
// collection and is the same for every sort and page over a fixed dataset.
type Page struct {
	Items      []View `json:"items"`
	TotalCount int    `json:"total_count"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}
