package rating_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/item"
	"bookshelf/internal/rating"
	"bookshelf/internal/storage/memory"
)

func newRatingService(t *testing.T) *rating.Service {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Items().Create(context.Background(), &item.Item{
		ID: "b1", Title: "Solaris", Author: "Lem", Ownership: item.OwnershipOwn,
	}))
	return rating.NewService(store.Ratings())
}

func TestUpsertRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newRatingService(t)

	require.NoError(t, svc.Upsert(ctx, "b1", 8, "re-read every year"))

	got, err := svc.Get(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, 8, got.Score)
	assert.Equal(t, "re-read every year", got.Notes)

	// second upsert replaces, never duplicates
	require.NoError(t, svc.Upsert(ctx, "b1", 3, ""))
	got, err = svc.Get(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Score)
	assert.Empty(t, got.Notes)
}

func TestUpsertScoreBounds(t *testing.T) {
	ctx := context.Background()
	svc := newRatingService(t)

	tests := []struct {
		name    string
		score   int
		wantErr error
	}{
		{name: "below minimum", score: 0, wantErr: rating.ErrScoreOutOfRange},
		{name: "above maximum", score: 11, wantErr: rating.ErrScoreOutOfRange},
		{name: "at minimum", score: 1},
		{name: "at maximum", score: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Upsert(ctx, "b1", tt.score, "")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUpsertUnknownItem(t *testing.T) {
	svc := newRatingService(t)
	err := svc.Upsert(context.Background(), "missing", 5, "")
	assert.True(t, errors.Is(err, item.ErrNotFound))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := newRatingService(t)

	require.NoError(t, svc.Upsert(ctx, "b1", 7, ""))
	require.NoError(t, svc.Delete(ctx, "b1"))

	_, err := svc.Get(ctx, "b1")
	assert.True(t, errors.Is(err, rating.ErrNotFound))

	err = svc.Delete(ctx, "b1")
	assert.True(t, errors.Is(err, rating.ErrNotFound))
}
