// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfmark/internal/media"
	"github.com/taibuivan/shelfmark/internal/platform/apperr"
)

func TestMemoryRepository_GetAndList(t *testing.T) {
	ctx := context.Background()
	repo := media.NewMemoryRepository(seed(t))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 15)
	assert.Equal(t, "m1", items[0].ID)

	got, err := repo.Get(ctx, "b3")
	require.NoError(t, err)
	assert.Equal(t, "Educated", got.Title)

	_, err = repo.Get(ctx, "missing")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestMemoryRepository_ApplyReview(t *testing.T) {
	ctx := context.Background()
	repo := media.NewMemoryRepository(seed(t))

	before, err := repo.Get(ctx, "m1")
	require.NoError(t, err)

	first := media.Review{ID: "r1", MediaID: "m1", Rating: 3.5, ReviewText: "ok", Tags: []string{"Heist"}, DateReviewed: time.Unix(10, 0)}
	second := media.Review{ID: "r2", MediaID: "m1", Rating: 4, ReviewText: "better", Tags: []string{"Heist", "Dreams"}, DateReviewed: time.Unix(20, 0)}

	_, err = repo.ApplyReview(ctx, first)
	require.NoError(t, err)
	updated, err := repo.ApplyReview(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, 4.0, updated.Rating)
	assert.Equal(t, "better", updated.ReviewText)
	assert.Equal(t, []string{"Heist", "Dreams"}, updated.Tags)
	assert.Equal(t, before.Details, updated.Details)

	// Earlier snapshots are unaffected.
	assert.Equal(t, 4.5, before.Rating)
	assert.Equal(t, []string{"Sci-Fi", "Action", "Thriller"}, before.Tags)

	reviews, err := repo.Reviews(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "r2", reviews[0].ID)
	assert.Equal(t, "r1", reviews[1].ID)

	_, err = repo.ApplyReview(ctx, media.Review{MediaID: "missing"})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	_, err = repo.Reviews(ctx, "missing")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestMemoryRepository_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := media.NewMemoryRepository(seed(t))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = repo.ApplyReview(ctx, media.Review{MediaID: "t1", Rating: 4, Tags: []string{"Crime"}})
		}()
		go func() {
			defer wg.Done()
			items, _ := repo.List(ctx)
			_ = media.Derive(items, media.DefaultListing)
		}()
	}
	wg.Wait()

	reviews, err := repo.Reviews(ctx, "t1")
	require.NoError(t, err)
	assert.Len(t, reviews, 16)
}
