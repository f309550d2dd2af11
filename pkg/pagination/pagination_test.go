// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/shelfmark/pkg/pagination"
)

func TestFromRequest_Clamping(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  pagination.Params
	}{
		{"defaults", "", pagination.Params{Page: 1, Limit: 20}},
		{"explicit", "?page=3&limit=5", pagination.Params{Page: 3, Limit: 5}},
		{"negative_page", "?page=-2", pagination.Params{Page: 1, Limit: 20}},
		{"excessive_limit", "?limit=1000", pagination.Params{Page: 1, Limit: 20}},
		{"garbage", "?page=abc&limit=x", pagination.Params{Page: 1, Limit: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/"+tt.query, nil)
			assert.Equal(t, tt.want, pagination.FromRequest(r))
		})
	}
}

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := pagination.Window(items, pagination.Params{Page: 2, Limit: 2})
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, pagination.Meta{Page: 2, Limit: 2, Total: 5, TotalPages: 3}, meta)

	page, _ = pagination.Window(items, pagination.Params{Page: 3, Limit: 2})
	assert.Equal(t, []int{5}, page)

	page, _ = pagination.Window(items, pagination.Params{Page: 9, Limit: 2})
	assert.NotNil(t, page)
	assert.Empty(t, page)
}
