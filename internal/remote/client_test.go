// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package remote_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfmark/internal/media"
	"github.com/taibuivan/shelfmark/internal/platform/apperr"
	"github.com/taibuivan/shelfmark/internal/remote"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newClient(t *testing.T, handler http.HandlerFunc, options ...remote.Option) *remote.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	options = append([]remote.Option{remote.WithHTTPClient(server.Client())}, options...)
	client, err := remote.NewClient(server.URL+"/api", time.Second, discardLogger(), options...)
	require.NoError(t, err)
	return client
}

type memoryCache struct {
	mu    sync.Mutex
	items map[string]media.MediaItem
	sets  int
}

func (c *memoryCache) Get(ctx context.Context, t media.Type, id string) (media.MediaItem, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[string(t)+"/"+id]
	return item, ok, nil
}

func (c *memoryCache) Set(ctx context.Context, t media.Type, id string, item media.MediaItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.items == nil {
		c.items = make(map[string]media.MediaItem)
	}
	c.items[string(t)+"/"+id] = item
	c.sets++
	return nil
}

func TestNewClient_RejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"ftp://example.com", "example.com/api", "://"} {
		_, err := remote.NewClient(raw, time.Second, discardLogger())
		assert.Error(t, err, raw)
	}
}

func TestClient_Search_TranslatesRequestAndResponse(t *testing.T) {
	var gotPath, gotQuery, gotPage string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("query")
		gotPage = r.URL.Query().Get("page")
		_, _ = io.WriteString(w, `{
			"results": [
				{"id": "tt1", "type": "tv", "title": "Dark", "year": "2017-2020",
				 "cover_image": null, "rating": 4.3, "tags": ["Sci-Fi"],
				 "additional_info": {"seasons": 3, "episodes": 26}},
				{"id": "tt2", "type": "tv", "title": "Devs", "year": "2020", "rating": null}
			],
			"total_pages": 4
		}`)
	})

	result, err := client.Search(context.Background(), media.TypeShow, "dark matter", 2)
	require.NoError(t, err)

	assert.Equal(t, "/api/search/tv", gotPath)
	assert.Equal(t, "dark matter", gotQuery)
	assert.Equal(t, "2", gotPage)

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 4, result.TotalPages)
	require.Len(t, result.Items, 2)

	dark := result.Items[0]
	assert.Equal(t, media.TypeShow, dark.Type)
	assert.Equal(t, 4.5, dark.Rating)
	assert.Empty(t, dark.CoverImage)
	assert.Equal(t, media.ShowDetails{Seasons: 3, Episodes: 26}, dark.Details)

	devs := result.Items[1]
	assert.Zero(t, devs.Rating)
	assert.NotNil(t, devs.Tags)
	assert.Nil(t, devs.Details)
}

func TestClient_Search_DefaultsPageAndTotal(t *testing.T) {
	var gotPage string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		_, _ = io.WriteString(w, `{"results": []}`)
	})

	result, err := client.Search(context.Background(), media.TypeBook, "dune", 0)
	require.NoError(t, err)
	assert.Equal(t, "1", gotPage)
	assert.Equal(t, 1, result.TotalPages)
	assert.NotNil(t, result.Items)
}

func TestClient_Errors_MapToUpstream(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server_error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"not_found", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}},
		{"malformed_body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"results": [`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, tt.handler)

			_, err := client.Search(context.Background(), media.TypeMovie, "x", 1)
			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, apperr.CodeUpstream))
			assert.Equal(t, http.StatusBadGateway, apperr.As(err).HTTPStatus)
		})
	}
}

func TestClient_Detail_UsesCache(t *testing.T) {
	calls := 0
	var gotPath string
	cache := &memoryCache{}
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotPath = r.URL.EscapedPath()
		_, _ = io.WriteString(w, `{"id": "m/1", "type": "movie", "title": "Heat", "year": "1995",
			"rating": 4.5, "additional_info": {"runtime": 170, "cast": ["Al Pacino"], "pages": 12}}`)
	}, remote.WithDetailCache(cache))

	first, err := client.Detail(context.Background(), media.TypeMovie, "m/1")
	require.NoError(t, err)
	assert.Equal(t, "/api/media/movie/m%2F1", gotPath)
	assert.Equal(t, media.MovieDetails{Runtime: 170, Cast: []string{"Al Pacino"}}, first.Details)

	second, err := client.Detail(context.Background(), media.TypeMovie, "m/1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, cache.sets)
}

func TestClient_SaveReview_SendsCamelCaseBody(t *testing.T) {
	var gotMethod, gotPath string
	var body map[string]any
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = io.WriteString(w, `{"success": true}`)
	})

	err := client.SaveReview(context.Background(), "b2", media.ReviewInput{Rating: 4, ReviewText: "Great"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/reviews/b2", gotPath)
	assert.Equal(t, "Great", body["reviewText"])
	assert.Equal(t, 4.0, body["rating"])
	assert.Equal(t, []any{}, body["tags"])
	assert.NotContains(t, body, "review_text")
}

func TestClient_Cancelled(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"results": []}`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, media.TypeMovie, "x", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
