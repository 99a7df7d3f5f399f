package item_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/item"
	"bookshelf/internal/loan"
	"bookshelf/internal/rating"
	"bookshelf/internal/status"
	"bookshelf/internal/storage/memory"
)

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := item.NewService(store.Items())

	year := 1965
	it := item.Item{
		Title:         "Dune",
		Author:        "Frank Herbert",
		ISBN:          "9780441172719",
		PublishedYear: &year,
		Ownership:     item.OwnershipOwn,
	}
	require.NoError(t, svc.Create(ctx, &it))
	assert.NotEmpty(t, it.ID)
	assert.False(t, it.CreatedAt.IsZero())
	assert.Equal(t, it.CreatedAt, it.UpdatedAt)

	got, err := svc.Get(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
	require.NotNil(t, got.PublishedYear)
	assert.Equal(t, 1965, *got.PublishedYear)
}

func TestCreateInvalidOwnership(t *testing.T) {
	svc := item.NewService(memory.NewStore().Items())
	err := svc.Create(context.Background(), &item.Item{
		Title: "Dune", Author: "Frank Herbert", Ownership: "BORROWED",
	})
	assert.True(t, errors.Is(err, item.ErrInvalidOwnership))
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := item.NewService(store.Items())

	it := item.Item{Title: "Dune", Author: "Frank Herbert", Ownership: item.OwnershipWantToBuy}
	require.NoError(t, svc.Create(ctx, &it))
	created := it.CreatedAt

	time.Sleep(time.Millisecond)
	it.Ownership = item.OwnershipOwn
	it.Notes = "picked up a first edition"
	require.NoError(t, svc.Update(ctx, &it))

	got, err := svc.Get(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, item.OwnershipOwn, got.Ownership)
	assert.Equal(t, "picked up a first edition", got.Notes)
	assert.Equal(t, created, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(created))
}

func TestUpdateUnknownItem(t *testing.T) {
	svc := item.NewService(memory.NewStore().Items())
	err := svc.Update(context.Background(), &item.Item{
		ID: "missing", Title: "x", Author: "y", Ownership: item.OwnershipOwn,
	})
	assert.True(t, errors.Is(err, item.ErrNotFound))
}

func TestGetUnknownItem(t *testing.T) {
	svc := item.NewService(memory.NewStore().Items())
	_, err := svc.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, item.ErrNotFound))
}

func TestDeleteCascades(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := item.NewService(store.Items())

	it := item.Item{Title: "Dune", Author: "Frank Herbert", Ownership: item.OwnershipOwn}
	require.NoError(t, svc.Create(ctx, &it))
	require.NoError(t, store.Ratings().Upsert(ctx, &rating.Rating{ItemID: it.ID, Score: 9}))
	require.NoError(t, store.Statuses().Upsert(ctx, &status.Status{ItemID: it.ID, Status: status.StatusCompleted}))
	require.NoError(t, store.Loans().Create(ctx, &loan.Loan{
		ID: "l1", ItemID: it.ID, Borrower: "Jane", LoanedAt: time.Now().UTC(),
	}))

	require.NoError(t, svc.Delete(ctx, it.ID))

	_, err := svc.Get(ctx, it.ID)
	assert.True(t, errors.Is(err, item.ErrNotFound))
	_, err = store.Ratings().GetByItem(ctx, it.ID)
	assert.True(t, errors.Is(err, rating.ErrNotFound))
	_, err = store.Statuses().GetByItem(ctx, it.ID)
	assert.True(t, errors.Is(err, status.ErrNotFound))
	history, err := store.Loans().History(ctx, it.ID)
	require.NoError(t, err)
	assert.Empty(t, history)

	err = svc.Delete(ctx, it.ID)
	assert.True(t, errors.Is(err, item.ErrNotFound))
}
