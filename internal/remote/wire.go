// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package remote

import (
	"fmt"

	"github.com/taibuivan/shelfmark/internal/media"
	"github.com/taibuivan/shelfmark/internal/rating"
	"github.com/taibuivan/shelfmark/pkg/pointer"
)

// # Path Segments
//
// The remote service names media kinds in the singular.

var segments = map[media.Type]string{
	media.TypeMovie: "movie",
	media.TypeShow:  "tv",
	media.TypeBook:  "book",
}

// Segment returns the remote path segment for t.
func Segment(t media.Type) (string, error) {
	segment, ok := segments[t]
	if !ok {
		return "", fmt.Errorf("remote: no segment for media type %q", t)
	}
	return segment, nil
}

// TypeFromSegment maps a remote segment back to a [media.Type].
func TypeFromSegment(segment string) (media.Type, bool) {
	for t, s := range segments {
		if s == segment {
			return t, true
		}
	}
	return "", false
}

// # Wire Format

// wireItem is a media record as the remote service sends it. Optional
// fields may be null.
type wireItem struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Year           string    `json:"year"`
	CoverImage     *string   `json:"cover_image"`
	Rating         *float64  `json:"rating"`
	Description    *string   `json:"description"`
	Creator        *string   `json:"creator"`
	Tags           []string  `json:"tags"`
	AdditionalInfo *wireInfo `json:"additional_info"`
}

// wireInfo is the union of every type-specific attribute the service sends.
type wireInfo struct {
	Runtime   *int     `json:"runtime"`
	Cast      []string `json:"cast"`
	Seasons   *int     `json:"seasons"`
	Episodes  *int     `json:"episodes"`
	Pages     *int     `json:"pages"`
	Publisher *string  `json:"publisher"`
}

type wireSearch struct {
	Results    []wireItem `json:"results"`
	TotalPages *int       `json:"total_pages"`
}

type wireReview struct {
	Rating     float64  `json:"rating"`
	ReviewText string   `json:"reviewText"`
	Tags       []string `json:"tags"`
}

// details picks the variant for t out of the flat attribute set.
func (info *wireInfo) details(t media.Type) media.Details {
	if info == nil {
		return nil
	}

	switch t {
	case media.TypeMovie:
		return media.MovieDetails{Runtime: pointer.Val(info.Runtime), Cast: info.Cast}
	case media.TypeShow:
		return media.ShowDetails{Seasons: pointer.Val(info.Seasons), Episodes: pointer.Val(info.Episodes)}
	case media.TypeBook:
		return media.BookDetails{Pages: pointer.Val(info.Pages), Publisher: pointer.Val(info.Publisher)}
	}
	return nil
}

// toMediaItem converts a remote record. The record's own type segment wins
// over requested when it is recognised; ratings are snapped to the
// half-star grid.
func (w wireItem) toMediaItem(requested media.Type) media.MediaItem {
	t := requested
	if parsed, ok := TypeFromSegment(w.Type); ok {
		t = parsed
	}

	tags := w.Tags
	if tags == nil {
		tags = []string{}
	}

	return media.MediaItem{
		ID:          w.ID,
		Type:        t,
		Title:       w.Title,
		Year:        w.Year,
		CoverImage:  pointer.Val(w.CoverImage),
		Rating:      rating.Snap(pointer.Val(w.Rating)),
		Tags:        tags,
		Description: pointer.Val(w.Description),
		Creator:     pointer.Val(w.Creator),
		Details:     w.AdditionalInfo.details(t),
	}
}

// SearchResult is one page of remote search results.
type SearchResult struct {
	Items      []media.MediaItem `json:"results"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}
