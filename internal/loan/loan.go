package loan

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoActiveLoan is returned when an operation requires an outstanding loan
// and the item has none.
var ErrNoActiveLoan = errors.New("no active loan for item")

// ErrEmptyBorrower is returned when a loan is created without a borrower name.
var ErrEmptyBorrower = errors.New("borrower must not be empty")

// ConflictError reports an attempt to loan an item that is already out.
// It names the current borrower so callers can surface it. Both the
// application-level pre-check and a store-level uniqueness violation are
// reported through this one type.
type ConflictError struct {
	Borrower string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("item is already loaned to %s", e.Borrower)
}

// Loan is one entry in an item's loan ledger. A loan is Active while
// Returned is false; Returned only ever transitions false to true.
type Loan struct {
	ID         string     `json:"id"`
	ItemID     string     `json:"item_id"`
	Borrower   string     `json:"borrower"`
	LoanedAt   time.Time  `json:"loaned_at"`
	Returned   bool       `json:"returned"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
}

// ActiveLoan is an outstanding loan joined with enough item identity for display.
type ActiveLoan struct {
	Loan
	ItemTitle string `json:"item_title"`
}
