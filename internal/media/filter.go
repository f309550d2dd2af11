// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"slices"
	"strings"

	"github.com/taibuivan/shelfmark/pkg/slice"
)

// FilterConfig selects which items a listing shows.
//
// It is immutable: the With* methods return modified copies, and the tag set
// is copied on the way in and on the way out.
type FilterConfig struct {
	tags      []string
	minRating float64
	year      string
}

// NewFilter builds a [FilterConfig]. Blank tags are dropped and duplicates
// collapse to their first occurrence.
func NewFilter(tags []string, minRating float64, year string) FilterConfig {
	return FilterConfig{
		tags:      cleanTags(tags),
		minRating: minRating,
		year:      strings.TrimSpace(year),
	}
}

// Tags returns a copy of the selected tags.
func (f FilterConfig) Tags() []string { return slices.Clone(f.tags) }

// MinRating returns the minimum rating threshold; 0 disables it.
func (f FilterConfig) MinRating() float64 { return f.minRating }

// Year returns the year or year-range filter; "" disables it.
func (f FilterConfig) Year() string { return f.year }

// WithTags returns a copy of f selecting tags instead.
func (f FilterConfig) WithTags(tags ...string) FilterConfig {
	f.tags = cleanTags(tags)
	return f
}

// WithMinRating returns a copy of f with a new rating threshold.
func (f FilterConfig) WithMinRating(minRating float64) FilterConfig {
	f.minRating = minRating
	return f
}

// WithYear returns a copy of f with a new year filter.
func (f FilterConfig) WithYear(year string) FilterConfig {
	f.year = strings.TrimSpace(year)
	return f
}

/*
Matches reports whether item passes every active criterion.

  - Tags: the item carries at least one selected tag.
  - Rating: the item rating is at least the threshold (when above zero).
  - Year: the item year and the filter overlap (see [YearSpan.Overlaps]).

A year filter or item year that does not parse never matches.
*/
func (f FilterConfig) Matches(item MediaItem) bool {
	if len(f.tags) > 0 && !slices.ContainsFunc(item.Tags, func(tag string) bool {
		return slices.Contains(f.tags, tag)
	}) {
		return false
	}

	if f.minRating > 0 && item.Rating < f.minRating {
		return false
	}

	if f.year != "" {
		want, ok := ParseYear(f.year)
		if !ok {
			return false
		}
		have, ok := ParseYear(item.Year)
		if !ok {
			return false
		}
		if !have.Overlaps(want) {
			return false
		}
	}

	return true
}

// Filter returns a new slice holding the items that match f, in input order.
func Filter(items []MediaItem, f FilterConfig) []MediaItem {
	return slice.Filter(items, f.Matches)
}

func cleanTags(tags []string) []string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	return slice.Unique(cleaned)
}
