// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"slices"
	"sync"

	"github.com/taibuivan/shelfmark/internal/platform/apperr"
)

// MemoryRepository keeps the catalog in process memory.
//
// Items handed out are copies of the stored ones; a review replaces the tag
// slice rather than editing it, so callers never observe later writes.
type MemoryRepository struct {
	mu      sync.RWMutex
	items   []MediaItem
	index   map[string]int
	reviews map[string][]Review
}

// NewMemoryRepository builds a repository holding a copy of items.
func NewMemoryRepository(items []MediaItem) *MemoryRepository {
	repository := &MemoryRepository{
		items:   slices.Clone(items),
		index:   make(map[string]int, len(items)),
		reviews: make(map[string][]Review),
	}
	for i, item := range repository.items {
		repository.index[item.ID] = i
	}
	return repository
}

func (repository *MemoryRepository) List(ctx context.Context) ([]MediaItem, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	items := slices.Clone(repository.items)
	if items == nil {
		items = []MediaItem{}
	}
	return items, nil
}

func (repository *MemoryRepository) Get(ctx context.Context, id string) (MediaItem, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	i, found := repository.index[id]
	if !found {
		return MediaItem{}, apperr.NotFound("Media")
	}
	return repository.items[i], nil
}

func (repository *MemoryRepository) ApplyReview(ctx context.Context, review Review) (MediaItem, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	i, found := repository.index[review.MediaID]
	if !found {
		return MediaItem{}, apperr.NotFound("Media")
	}

	item := repository.items[i]
	item.Rating = review.Rating
	item.ReviewText = review.ReviewText
	item.Tags = slices.Clone(review.Tags)
	repository.items[i] = item

	review.Tags = slices.Clone(review.Tags)
	repository.reviews[review.MediaID] = append(repository.reviews[review.MediaID], review)

	return item, nil
}

func (repository *MemoryRepository) Reviews(ctx context.Context, mediaID string) ([]Review, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	if _, found := repository.index[mediaID]; !found {
		return nil, apperr.NotFound("Media")
	}

	stored := repository.reviews[mediaID]
	reviews := make([]Review, len(stored))
	for i, review := range stored {
		reviews[len(stored)-1-i] = review
	}
	return reviews, nil
}
