// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"cmp"
	"slices"

	"github.com/taibuivan/shelfmark/internal/platform/constants"
	"github.com/taibuivan/shelfmark/pkg/slice"
	"github.com/taibuivan/shelfmark/pkg/slug"
)

// # Catalog Helpers
//
// These operate on a catalog snapshot and never modify it.

// ByType returns the items of kind t in catalog order.
func ByType(items []MediaItem, t Type) []MediaItem {
	return slice.Filter(items, func(item MediaItem) bool { return item.Type == t })
}

// ByID returns the item with the given id.
func ByID(items []MediaItem, id string) (MediaItem, bool) {
	index := slices.IndexFunc(items, func(item MediaItem) bool { return item.ID == id })
	if index < 0 {
		return MediaItem{}, false
	}
	return items[index], true
}

// ByTag returns the items carrying the exact tag name, in catalog order.
func ByTag(items []MediaItem, name string) []MediaItem {
	return slice.Filter(items, func(item MediaItem) bool { return slices.Contains(item.Tags, name) })
}

// Recent returns up to limit items, newest DateAdded first.
// A non-positive limit uses [constants.DashboardLimit].
func Recent(items []MediaItem, limit int) []MediaItem {
	return head(Sort(items, SortConfig{Field: SortDateAdded, Direction: Descending}), limit)
}

// TopRated returns up to limit items, highest rating first. Ties keep
// catalog order.
func TopRated(items []MediaItem, limit int) []MediaItem {
	return head(Sort(items, SortConfig{Field: SortRating, Direction: Descending}), limit)
}

func head(items []MediaItem, limit int) []MediaItem {
	if limit <= 0 {
		limit = constants.DashboardLimit
	}
	return items[:min(limit, len(items))]
}

/*
Tags derives the tag summary of the catalog.

Each tag records how many items carry it and the cover of the first item (in
catalog order) that does. The result is ordered by count descending, then
by name.
*/
func Tags(items []MediaItem) []Tag {
	index := make(map[string]int)
	tags := make([]Tag, 0)

	for _, item := range items {
		for _, name := range slice.Unique(item.Tags) {
			if i, seen := index[name]; seen {
				tags[i].MediaCount++
				continue
			}
			index[name] = len(tags)
			tags = append(tags, Tag{
				ID:         slug.From(name),
				Name:       name,
				MediaCount: 1,
				CoverImage: item.CoverImage,
			})
		}
	}

	slices.SortFunc(tags, func(a, b Tag) int {
		if c := cmp.Compare(b.MediaCount, a.MediaCount); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return tags
}

// BuildDashboard assembles the landing page from a catalog snapshot.
func BuildDashboard(items []MediaItem, limit int) Dashboard {
	return Dashboard{
		Recent:   Recent(items, limit),
		TopRated: TopRated(items, limit),
		Tags:     Tags(items),
	}
}
