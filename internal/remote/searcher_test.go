// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package remote_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/taibuivan/shelfmark/internal/media"
	"github.com/taibuivan/shelfmark/internal/platform/apperr"
	"github.com/taibuivan/shelfmark/internal/remote"
)

// scriptedClient answers each query from a per-query gate. Queries without a
// gate answer immediately.
type scriptedClient struct {
	started chan string
	gates   map[string]chan struct{}
	honour  bool
}

func (c *scriptedClient) Search(ctx context.Context, t media.Type, query string, page int) (remote.SearchResult, error) {
	if c.started != nil {
		c.started <- query
	}
	if gate, ok := c.gates[query]; ok {
		if c.honour {
			select {
			case <-gate:
			case <-ctx.Done():
				return remote.SearchResult{}, ctx.Err()
			}
		} else {
			<-gate
		}
	}
	return remote.SearchResult{
		Items: []media.MediaItem{{ID: query, Type: t, Title: query}},
		Page:  page,
	}, nil
}

type outcome struct {
	result remote.SearchResult
	err    error
}

func TestSearcher_NewerSearchCancelsOlder(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	client := &scriptedClient{
		started: make(chan string, 2),
		gates:   map[string]chan struct{}{"du": make(chan struct{})},
		honour:  true,
	}
	searcher := remote.NewSearcher(client)

	older := make(chan outcome, 1)
	go func() {
		result, err := searcher.Search(context.Background(), "tab-1", media.TypeBook, "du", 1)
		older <- outcome{result, err}
	}()
	require.Equal(t, "du", <-client.started)

	result, err := searcher.Search(context.Background(), "tab-1", media.TypeBook, "dune", 1)
	require.NoError(t, err)
	assert.Equal(t, "dune", result.Items[0].ID)
	<-client.started

	got := <-older
	require.Error(t, got.err)
	assert.ErrorIs(t, got.err, remote.ErrSuperseded)
	assert.True(t, apperr.HasCode(got.err, apperr.CodeSuperseded))
	assert.Zero(t, searcher.InFlight())
}

func TestSearcher_LateResponseIsDropped(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	gate := make(chan struct{})
	client := &scriptedClient{
		started: make(chan string, 2),
		gates:   map[string]chan struct{}{"slow": gate},
	}
	searcher := remote.NewSearcher(client)

	older := make(chan outcome, 1)
	go func() {
		result, err := searcher.Search(context.Background(), "tab-1", media.TypeMovie, "slow", 1)
		older <- outcome{result, err}
	}()
	<-client.started

	result, err := searcher.Search(context.Background(), "tab-1", media.TypeMovie, "fast", 1)
	require.NoError(t, err)
	assert.Equal(t, "fast", result.Items[0].ID)
	<-client.started

	close(gate)
	got := <-older
	assert.True(t, errors.Is(got.err, remote.ErrSuperseded))
	assert.Empty(t, got.result.Items)
}

func TestSearcher_SessionsAreIndependent(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	gate := make(chan struct{})
	client := &scriptedClient{
		started: make(chan string, 2),
		gates:   map[string]chan struct{}{"held": gate},
		honour:  true,
	}
	searcher := remote.NewSearcher(client)

	first := make(chan outcome, 1)
	go func() {
		result, err := searcher.Search(context.Background(), "tab-1", media.TypeShow, "held", 1)
		first <- outcome{result, err}
	}()
	<-client.started
	assert.Equal(t, 1, searcher.InFlight())

	_, err := searcher.Search(context.Background(), "tab-2", media.TypeShow, "other", 1)
	require.NoError(t, err)
	<-client.started

	close(gate)
	got := <-first
	require.NoError(t, got.err)
	assert.Equal(t, "held", got.result.Items[0].ID)
	assert.Zero(t, searcher.InFlight())
}

func TestSearcher_TypesInOneSessionAreIndependent(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	gate := make(chan struct{})
	client := &scriptedClient{
		started: make(chan string, 2),
		gates:   map[string]chan struct{}{"heat": gate},
		honour:  true,
	}
	searcher := remote.NewSearcher(client)

	movies := make(chan outcome, 1)
	go func() {
		result, err := searcher.Search(context.Background(), "ip:10.0.0.1", media.TypeMovie, "heat", 1)
		movies <- outcome{result, err}
	}()
	<-client.started

	books, err := searcher.Search(context.Background(), "ip:10.0.0.1", media.TypeBook, "dune", 1)
	require.NoError(t, err)
	assert.Equal(t, "dune", books.Items[0].ID)
	<-client.started
	assert.Equal(t, 1, searcher.InFlight())

	close(gate)
	got := <-movies
	require.NoError(t, got.err)
	assert.Equal(t, "heat", got.result.Items[0].ID)
	assert.Equal(t, media.TypeMovie, got.result.Items[0].Type)
	assert.Zero(t, searcher.InFlight())
}

func TestSearcher_EmptySessionIsUncoordinated(t *testing.T) {
	searcher := remote.NewSearcher(&scriptedClient{})

	result, err := searcher.Search(context.Background(), "", media.TypeMovie, "heat", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Page)
	assert.Zero(t, searcher.InFlight())
}
