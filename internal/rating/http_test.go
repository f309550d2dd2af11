// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rating_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfmark/internal/rating"
)

func get(target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	rating.Routes().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func TestRoutes_Render(t *testing.T) {
	recorder := get("/?rating=3.5&ascii=true")
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data struct {
			Rating float64  `json:"rating"`
			Slots  []string `json:"slots"`
			Glyphs string   `json:"glyphs"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	assert.Equal(t, 3.5, envelope.Data.Rating)
	assert.Equal(t, "***+.", envelope.Data.Glyphs)
	assert.Equal(t, []string{"full", "full", "full", "full", "full", "full", "full", "empty", "empty", "empty"}, envelope.Data.Slots)
}

func TestRoutes_Render_Invalid(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get("/").Code)
	assert.Equal(t, http.StatusBadRequest, get("/?rating=lots").Code)
}

func TestRoutes_FromSlot(t *testing.T) {
	recorder := get("/slots/6")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data": {"rating": 3.5}}`, recorder.Body.String())

	assert.Equal(t, http.StatusBadRequest, get("/slots/10").Code)
	assert.Equal(t, http.StatusBadRequest, get("/slots/x").Code)
}
