package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/item"
	"bookshelf/internal/loan"
	"bookshelf/internal/storage/memory"
)

// TestConcurrentLoanCreate races many creates for the same item and expects
// the guard to let exactly one through, matching what the partial unique
// index guarantees in Postgres.
func TestConcurrentLoanCreate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Items().Create(ctx, &item.Item{
		ID: "b1", Title: "Neuromancer", Author: "Gibson", Ownership: item.OwnershipOwn,
	}))

	const attempts = 50
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.Loans().Create(ctx, &loan.Loan{
				ID:       fmt.Sprintf("l%02d", i),
				ItemID:   "b1",
				Borrower: fmt.Sprintf("Borrower %02d", i),
				LoanedAt: time.Now().UTC(),
			})
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		var conflict *loan.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.NotEmpty(t, conflict.Borrower)
		conflicts++
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, attempts-1, conflicts)

	history, err := store.Loans().History(ctx, "b1")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestConcurrentReadsDuringWrites(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Items().Create(ctx, &item.Item{
			ID: fmt.Sprintf("b%d", i), Title: fmt.Sprintf("Book %d", i),
			Author: "A", Ownership: item.OwnershipOwn,
		}))
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Loans().Create(ctx, &loan.Loan{
				ID: fmt.Sprintf("l%02d", i), ItemID: fmt.Sprintf("b%d", i%5),
				Borrower: "Jane", LoanedAt: time.Now().UTC(),
			})
		}(i)
		go func() {
			defer wg.Done()
			views, err := store.Catalog().ListViews(ctx)
			assert.NoError(t, err)
			assert.Len(t, views, 5)
		}()
	}
	wg.Wait()
}
