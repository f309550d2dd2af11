// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

// ListingConfig is everything a listing view needs to turn a catalog into
// the rows it shows.
type ListingConfig struct {
	Filter FilterConfig
	Sort   SortConfig
}

// DefaultListing shows everything ordered by title.
var DefaultListing = ListingConfig{Sort: DefaultSort}

// Derive filters items and returns them sorted as a new slice. The input is
// never modified.
func Derive(items []MediaItem, config ListingConfig) []MediaItem {
	return Sort(Filter(items, config.Filter), config.Sort)
}
