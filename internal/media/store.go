// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import "context"

// Repository is the storage contract for the catalog.
//
// Implementations are safe for concurrent use. List returns items in catalog
// (insertion) order; missing items are reported as NOT_FOUND.
type Repository interface {
	List(ctx context.Context) ([]MediaItem, error)
	Get(ctx context.Context, id string) (MediaItem, error)

	// ApplyReview stores review and replaces the item's rating, review text
	// and tags with the review's. It returns the updated item.
	ApplyReview(ctx context.Context, review Review) (MediaItem, error)

	// Reviews returns the saved reviews for an item, newest first.
	Reviews(ctx context.Context, mediaID string) ([]Review, error)
}
