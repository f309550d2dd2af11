// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"reflect"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRow hands out column values in order. A nil value leaves the
// destination at its zero value, as SQL NULL does for nullable columns.
type stubRow struct {
	values []any
	err    error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, target := range dest {
		if r.values[i] == nil {
			continue
		}
		elem := reflect.ValueOf(target).Elem()
		elem.Set(reflect.ValueOf(r.values[i]).Convert(elem.Type()))
	}
	return nil
}

func mediaRow(id string, t Type, tags []string, info []byte) stubRow {
	var tagValue any
	if tags != nil {
		tagValue = tags
	}
	var infoValue any
	if info != nil {
		infoValue = info
	}
	return stubRow{values: []any{
		id, string(t), "Title " + id, "2010", "", 4.5, tagValue,
		"", "", "", infoValue, "2024-01-02",
	}}
}

func TestScanMedia_DecodesDetailsPerType(t *testing.T) {
	tests := []struct {
		name string
		row  stubRow
		want Details
	}{
		{"movie", mediaRow("m1", TypeMovie, []string{"Sci-Fi"}, []byte(`{"runtime": 148, "cast": ["Leonardo DiCaprio"]}`)),
			MovieDetails{Runtime: 148, Cast: []string{"Leonardo DiCaprio"}}},
		{"show", mediaRow("t1", TypeShow, []string{"Crime"}, []byte(`{"seasons": 5, "episodes": 62}`)),
			ShowDetails{Seasons: 5, Episodes: 62}},
		{"book", mediaRow("b1", TypeBook, []string{"Fiction"}, []byte(`{"pages": 281, "publisher": "Lippincott"}`)),
			BookDetails{Pages: 281, Publisher: "Lippincott"}},
		{"no_details", mediaRow("b2", TypeBook, []string{"Memoir"}, nil), nil},
		{"json_null", mediaRow("b3", TypeBook, []string{"Memoir"}, []byte(`null`)), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := scanMedia(tt.row)
			require.NoError(t, err)
			assert.Equal(t, tt.want, item.Details)
			assert.Equal(t, 4.5, item.Rating)
			assert.Equal(t, "2024-01-02", item.DateAdded)
		})
	}
}

func TestScanMedia_NullTagsBecomeEmpty(t *testing.T) {
	item, err := scanMedia(mediaRow("m9", TypeMovie, nil, nil))
	require.NoError(t, err)
	assert.NotNil(t, item.Tags)
	assert.Empty(t, item.Tags)
}

func TestScanMedia_RejectsForeignDetails(t *testing.T) {
	_, err := scanMedia(mediaRow("m2", TypeMovie, []string{"Drama"}, []byte(`{"pages": 300}`)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDetailsMismatch)
}

func TestScanMedia_PropagatesScanError(t *testing.T) {
	_, err := scanMedia(stubRow{err: pgx.ErrNoRows})
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
