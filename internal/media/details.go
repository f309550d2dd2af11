// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Details is the type-specific part of a [MediaItem].
//
// Exactly one variant exists per [Type]; Kind reports which.
type Details interface {
	Kind() Type
}

// MovieDetails carries runtime in minutes and the leading cast.
type MovieDetails struct {
	Runtime int      `json:"runtime,omitempty" yaml:"runtime"`
	Cast    []string `json:"cast,omitempty" yaml:"cast"`
}

// ShowDetails carries season and episode counts.
type ShowDetails struct {
	Seasons  int `json:"seasons,omitempty" yaml:"seasons"`
	Episodes int `json:"episodes,omitempty" yaml:"episodes"`
}

// BookDetails carries page count and publisher.
type BookDetails struct {
	Pages     int    `json:"pages,omitempty" yaml:"pages"`
	Publisher string `json:"publisher,omitempty" yaml:"publisher"`
}

func (MovieDetails) Kind() Type { return TypeMovie }
func (ShowDetails) Kind() Type  { return TypeShow }
func (BookDetails) Kind() Type  { return TypeBook }

// ErrDetailsMismatch is returned when details do not belong to the item's type.
var ErrDetailsMismatch = errors.New("media: additional info does not match media type")

// newDetails returns an empty variant for t.
func newDetails(t Type) (Details, error) {
	switch t {
	case TypeMovie:
		return &MovieDetails{}, nil
	case TypeShow:
		return &ShowDetails{}, nil
	case TypeBook:
		return &BookDetails{}, nil
	default:
		return nil, fmt.Errorf("media: unknown type %q", t)
	}
}

// deref turns the pointer used while decoding back into a value variant.
func deref(d Details) Details {
	switch v := d.(type) {
	case *MovieDetails:
		return *v
	case *ShowDetails:
		return *v
	case *BookDetails:
		return *v
	}
	return d
}

/*
DecodeDetails decodes raw JSON into the variant for t.

Empty input and JSON null yield nil details. Keys that belong to another
variant (for example "pages" on a movie) fail with [ErrDetailsMismatch].
*/
func DecodeDetails(t Type, raw []byte) (Details, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	target, err := newDetails(t)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDetailsMismatch, t, err)
	}
	return deref(target), nil
}

func decodeDetailsYAML(t Type, node *yaml.Node) (Details, error) {
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil, nil
	}

	target, err := newDetails(t)
	if err != nil {
		return nil, err
	}

	// Node.Decode has no strict mode, so round-trip through a KnownFields decoder.
	raw, err := yaml.Marshal(node)
	if err != nil {
		return nil, err
	}
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(target); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDetailsMismatch, t, err)
	}
	return deref(target), nil
}

// CheckDetails reports whether item's details, if any, match its type.
func CheckDetails(item MediaItem) error {
	if item.Details == nil {
		return nil
	}
	if item.Details.Kind() != item.Type {
		return fmt.Errorf("%w: %s carries %s details", ErrDetailsMismatch, item.Type, item.Details.Kind())
	}
	return nil
}
