// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package media holds the personal catalog of movies, TV shows and books.

It owns the domain types, the pure listing pipeline (filter then stable
sort), the catalog helpers that derive tags and dashboards, the repositories
that store items, and the HTTP surface that exposes them.

Listings are always derived: handlers build an immutable [ListingConfig] and
call [Derive] on a snapshot of the catalog. Nothing is cached between requests.
*/
package media

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// # Media Types

// Type is the closed set of media kinds the catalog tracks.
type Type string

const (
	TypeMovie Type = "movies"
	TypeShow  Type = "tv-shows"
	TypeBook  Type = "books"
)

// Types lists every valid [Type] in display order.
var Types = []Type{TypeMovie, TypeShow, TypeBook}

// Valid reports whether t is one of the known media kinds.
func (t Type) Valid() bool {
	switch t {
	case TypeMovie, TypeShow, TypeBook:
		return true
	}
	return false
}

// ParseType converts a path or query value into a [Type].
func ParseType(raw string) (Type, error) {
	t := Type(raw)
	if !t.Valid() {
		return "", fmt.Errorf("media: unknown type %q", raw)
	}
	return t, nil
}

// # Field Identifiers

const (
	FieldType       = "type"
	FieldRating     = "rating"
	FieldYear       = "year"
	FieldTags       = "tags"
	FieldSort       = "sort"
	FieldDirection  = "dir"
	FieldReviewText = "review_text"
	FieldSlot       = "slot"
)

// # Entities

// MediaItem is one catalog entry.
//
// Year is either a single year ("2010") or an inclusive range ("2008-2013").
// Rating lies in [0, 5] on a 0.5 grid. DateAdded is a calendar date
// (YYYY-MM-DD). Details, when present, always matches Type.
type MediaItem struct {
	ID          string   `json:"id" yaml:"id"`
	Type        Type     `json:"type" yaml:"type"`
	Title       string   `json:"title" yaml:"title"`
	Year        string   `json:"year" yaml:"year"`
	CoverImage  string   `json:"cover_image" yaml:"cover_image"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Tags        []string `json:"tags" yaml:"tags"`
	Description string   `json:"description,omitempty" yaml:"description"`
	Creator     string   `json:"creator,omitempty" yaml:"creator"`
	ReviewText  string   `json:"review_text,omitempty" yaml:"review_text"`
	Details     Details  `json:"additional_info,omitempty" yaml:"-"`
	DateAdded   string   `json:"date_added" yaml:"date_added"`
}

// itemFields aliases MediaItem without its methods so the decoders below can
// reuse the default field handling.
type itemFields MediaItem

// UnmarshalJSON decodes an item and resolves additional_info into the
// [Details] variant selected by type.
func (item *MediaItem) UnmarshalJSON(data []byte) error {
	var wire struct {
		itemFields
		AdditionalInfo json.RawMessage `json:"additional_info"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	details, err := DecodeDetails(wire.Type, wire.AdditionalInfo)
	if err != nil {
		return err
	}

	*item = MediaItem(wire.itemFields)
	item.Details = details
	return nil
}

// UnmarshalYAML decodes a seed catalog entry the same way as [MediaItem.UnmarshalJSON].
func (item *MediaItem) UnmarshalYAML(node *yaml.Node) error {
	var wire struct {
		itemFields     `yaml:",inline"`
		AdditionalInfo yaml.Node `yaml:"additional_info"`
	}
	if err := node.Decode(&wire); err != nil {
		return err
	}

	details, err := decodeDetailsYAML(wire.Type, &wire.AdditionalInfo)
	if err != nil {
		return fmt.Errorf("media %q: %w", wire.ID, err)
	}

	*item = MediaItem(wire.itemFields)
	item.Details = details
	return nil
}

// Review is one saved personal review of a catalog item.
type Review struct {
	ID           string    `json:"id"`
	MediaID      string    `json:"media_id"`
	MediaType    Type      `json:"media_type"`
	Rating       float64   `json:"rating"`
	ReviewText   string    `json:"review_text"`
	Tags         []string  `json:"tags"`
	ReviewerID   string    `json:"reviewer_id,omitempty"`
	DateReviewed time.Time `json:"date_reviewed"`
}

// Tag summarises one tag across the catalog. Tags are derived, never stored.
type Tag struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	MediaCount int    `json:"media_count"`
	CoverImage string `json:"cover_image,omitempty"`
}

// Dashboard is the landing-page aggregate.
type Dashboard struct {
	Recent   []MediaItem `json:"recent"`
	TopRated []MediaItem `json:"top_rated"`
	Tags     []Tag       `json:"tags"`
}
