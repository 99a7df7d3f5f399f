package loan_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/item"
	"bookshelf/internal/loan"
	"bookshelf/internal/storage/memory"
)

func newLoanService(t *testing.T, ids ...string) (*loan.Service, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	for _, id := range ids {
		require.NoError(t, store.Items().Create(context.Background(), &item.Item{
			ID: id, Title: "Title " + id, Author: "Someone", Ownership: item.OwnershipOwn,
		}))
	}
	return loan.NewService(store.Loans(), store.Items()), store
}

func TestCreateReturnLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoanService(t, "b1")

	created, err := svc.Create(ctx, "b1", "Jane")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "b1", created.ItemID)
	assert.Equal(t, "Jane", created.Borrower)
	assert.False(t, created.Returned)
	assert.Nil(t, created.ReturnedAt)
	assert.WithinDuration(t, time.Now().UTC(), created.LoanedAt, time.Minute)

	active, err := svc.Active(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, active.ID)

	require.NoError(t, svc.Return(ctx, "b1"))

	_, err = svc.Active(ctx, "b1")
	assert.True(t, errors.Is(err, loan.ErrNoActiveLoan))

	history, err := svc.History(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.True(t, history[0].Returned)
	require.NotNil(t, history[0].ReturnedAt)
	assert.False(t, history[0].ReturnedAt.Before(history[0].LoanedAt))
}

func TestCreateConflictKeepsFirstBorrower(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoanService(t, "b1")

	_, err := svc.Create(ctx, "b1", "Jane")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "b1", "Marek")
	var conflict *loan.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "Jane", conflict.Borrower)

	// the losing attempt must not touch the ledger
	active, err := svc.Active(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", active.Borrower)

	history, err := svc.History(ctx, "b1")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestCreateAfterReturnSucceeds(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoanService(t, "b1")

	_, err := svc.Create(ctx, "b1", "Jane")
	require.NoError(t, err)
	require.NoError(t, svc.Return(ctx, "b1"))

	second, err := svc.Create(ctx, "b1", "Marek")
	require.NoError(t, err)
	assert.Equal(t, "Marek", second.Borrower)

	history, err := svc.History(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	// newest first
	assert.Equal(t, second.ID, history[0].ID)
	assert.False(t, history[0].Returned)
	assert.True(t, history[1].Returned)
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoanService(t, "b1")

	_, err := svc.Create(ctx, "b1", "")
	assert.True(t, errors.Is(err, loan.ErrEmptyBorrower))

	_, err = svc.Create(ctx, "missing", "Jane")
	assert.True(t, errors.Is(err, item.ErrNotFound))
}

func TestReturnWithoutActiveLoan(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLoanService(t, "b1")

	err := svc.Return(ctx, "b1")
	assert.True(t, errors.Is(err, loan.ErrNoActiveLoan))

	// returning twice is the same as returning never-loaned
	_, err = svc.Create(ctx, "b1", "Jane")
	require.NoError(t, err)
	require.NoError(t, svc.Return(ctx, "b1"))
	err = svc.Return(ctx, "b1")
	assert.True(t, errors.Is(err, loan.ErrNoActiveLoan))
}

func TestHistoryUnknownItem(t *testing.T) {
	svc, _ := newLoanService(t, "b1")
	_, err := svc.History(context.Background(), "missing")
	assert.True(t, errors.Is(err, item.ErrNotFound))
}

func TestAllActiveOldestFirstWithTitles(t *testing.T) {
	ctx := context.Background()
	svc, store := newLoanService(t, "b1", "b2", "b3")

	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	// seed through the repo directly so loan timestamps are deterministic
	require.NoError(t, store.Loans().Create(ctx, &loan.Loan{
		ID: "l2", ItemID: "b2", Borrower: "Marek", LoanedAt: base.Add(time.Hour),
	}))
	require.NoError(t, store.Loans().Create(ctx, &loan.Loan{
		ID: "l1", ItemID: "b1", Borrower: "Jane", LoanedAt: base,
	}))
	require.NoError(t, store.Loans().Create(ctx, &loan.Loan{
		ID: "l3", ItemID: "b3", Borrower: "Alice", LoanedAt: base.Add(2 * time.Hour),
	}))
	require.NoError(t, store.Loans().MarkReturned(ctx, "b3", base.Add(3*time.Hour)))

	active, err := svc.AllActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "l1", active[0].ID)
	assert.Equal(t, "Title b1", active[0].ItemTitle)
	assert.Equal(t, "l2", active[1].ID)
	assert.Equal(t, "Title b2", active[1].ItemTitle)
}

func TestConflictErrorMessage(t *testing.T) {
	err := &loan.ConflictError{Borrower: "Jane"}
	assert.Equal(t, "item is already loaned to Jane", err.Error())
}
