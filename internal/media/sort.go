// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField names the key a listing is ordered by.
type SortField string

const (
	SortTitle     SortField = "title"
	SortYear      SortField = "year"
	SortRating    SortField = "rating"
	SortDateAdded SortField = "dateAdded"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortConfig orders a listing. The zero value sorts by title ascending.
type SortConfig struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSort is the order used when a listing does not ask for one.
var DefaultSort = SortConfig{Field: SortTitle, Direction: Ascending}

// ParseSort validates raw field and direction values, applying defaults for blanks.
func ParseSort(field, direction string) (SortConfig, error) {
	config := DefaultSort

	switch f := SortField(field); f {
	case "":
	case SortTitle, SortYear, SortRating, SortDateAdded:
		config.Field = f
	default:
		return SortConfig{}, fmt.Errorf("media: unknown sort field %q", field)
	}

	switch d := SortDirection(direction); d {
	case "":
	case Ascending, Descending:
		config.Direction = d
	default:
		return SortConfig{}, fmt.Errorf("media: unknown sort direction %q", direction)
	}

	return config, nil
}

// dateLayouts are tried in order when parsing DateAdded.
var dateLayouts = []string{time.DateOnly, time.RFC3339}

// parseDateAdded returns the zero time for values no layout accepts.
func parseDateAdded(raw string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// comparator builds the ascending comparison for field.
//
// Titles use a fresh collator per call; collators keep scratch buffers and
// must not be shared between goroutines.
func comparator(field SortField) func(a, b MediaItem) int {
	switch field {
	case SortYear:
		return func(a, b MediaItem) int {
			return cmp.Compare(startYear(a.Year), startYear(b.Year))
		}
	case SortRating:
		return func(a, b MediaItem) int {
			return cmp.Compare(a.Rating, b.Rating)
		}
	case SortDateAdded:
		return func(a, b MediaItem) int {
			return parseDateAdded(a.DateAdded).Compare(parseDateAdded(b.DateAdded))
		}
	default:
		collator := collate.New(language.English)
		return func(a, b MediaItem) int {
			return collator.CompareString(a.Title, b.Title)
		}
	}
}

// Sort returns a sorted copy of items. Items with equal keys keep their input
// order in both directions.
func Sort(items []MediaItem, config SortConfig) []MediaItem {
	sorted := slices.Clone(items)
	if sorted == nil {
		sorted = []MediaItem{}
	}

	compare := comparator(config.Field)
	if config.Direction == Descending {
		ascending := compare
		compare = func(a, b MediaItem) int { return -ascending(a, b) }
	}

	slices.SortStableFunc(sorted, compare)
	return sorted
}
