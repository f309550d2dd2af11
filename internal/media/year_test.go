// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/shelfmark/internal/media"
)

func TestParseYear(t *testing.T) {
	tests := []struct {
		in   string
		want media.YearSpan
		ok   bool
	}{
		{"2010", media.YearSpan{Start: 2010, End: 2010}, true},
		{" 2010 ", media.YearSpan{Start: 2010, End: 2010}, true},
		{"2008-2013", media.YearSpan{Start: 2008, End: 2013}, true},
		{"2008 - 2013", media.YearSpan{Start: 2008, End: 2013}, true},
		{"2013-2008", media.YearSpan{Start: 2013, End: 2008}, true},
		{"", media.YearSpan{}, false},
		{"abc", media.YearSpan{}, false},
		{"2010-", media.YearSpan{}, false},
		{"-2010", media.YearSpan{}, false},
		{"2010-2012-2014", media.YearSpan{}, false},
		{"20x0-2012", media.YearSpan{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := media.ParseYear(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYearSpan_Overlaps(t *testing.T) {
	show := media.YearSpan{Start: 2010, End: 2015}

	assert.True(t, show.Overlaps(media.YearSpan{Start: 2012, End: 2020}))
	assert.False(t, show.Overlaps(media.YearSpan{Start: 2016, End: 2020}))
	assert.True(t, show.Overlaps(media.YearSpan{Start: 2015, End: 2015}))
	assert.False(t, show.Overlaps(media.YearSpan{Start: 2009, End: 2009}))
}
