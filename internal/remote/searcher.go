// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package remote

import (
	"context"
	"errors"
	"sync"

	"github.com/taibuivan/shelfmark/internal/media"
	"github.com/taibuivan/shelfmark/internal/platform/apperr"
	"github.com/taibuivan/shelfmark/internal/platform/metrics"
)

// ErrSuperseded marks a search whose listing started a newer search before
// this one finished. It is wrapped in a SUPERSEDED [apperr.AppError].
var ErrSuperseded = errors.New("remote: search superseded by a newer request")

// SearchClient is the part of [Client] the searcher needs.
type SearchClient interface {
	Search(ctx context.Context, t media.Type, query string, page int) (SearchResult, error)
}

type inflight struct {
	token  uint64
	cancel context.CancelFunc
}

/*
Searcher makes overlapping searches of one listing latest-request-wins.

A listing is a session searching one media type, so a movie search and a
book search from the same session never affect each other. Each call takes
a new token and becomes the listing's latest search, cancelling the
previous one if it is still in flight. When a response
arrives the call checks its token again; if a newer search has started in
the meantime the response is dropped and the caller gets [ErrSuperseded]
instead, so a slow early response can never replace a later one.

Listings with no search in flight hold no state. An empty session is not
coordinated at all.
*/
type Searcher struct {
	client SearchClient

	mu     sync.Mutex
	next   uint64
	latest map[string]inflight
}

// listingKey identifies the search slot of one media type within a session.
func listingKey(session string, t media.Type) string {
	return session + "\x00" + string(t)
}

// NewSearcher wraps client.
func NewSearcher(client SearchClient) *Searcher {
	return &Searcher{client: client, latest: make(map[string]inflight)}
}

// Search runs a search as the newest request of the session's t listing.
func (searcher *Searcher) Search(ctx context.Context, session string, t media.Type, query string, page int) (SearchResult, error) {
	if session == "" {
		return searcher.client.Search(ctx, t, query, page)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	key := listingKey(session, t)
	token := searcher.begin(key, cancel)
	result, err := searcher.client.Search(ctx, t, query, page)

	if !searcher.finish(key, token) {
		metrics.CountRemote(OpSearch, metrics.OutcomeSuperseded)
		return SearchResult{}, apperr.Superseded(ErrSuperseded)
	}
	return result, err
}

// begin registers a new latest search for key and cancels the one it replaces.
func (searcher *Searcher) begin(key string, cancel context.CancelFunc) uint64 {
	searcher.mu.Lock()
	defer searcher.mu.Unlock()

	searcher.next++
	token := searcher.next

	if previous, ok := searcher.latest[key]; ok {
		previous.cancel()
	}
	searcher.latest[key] = inflight{token: token, cancel: cancel}
	return token
}

// finish reports whether token is still the latest search for key and, if
// so, clears it.
func (searcher *Searcher) finish(key string, token uint64) bool {
	searcher.mu.Lock()
	defer searcher.mu.Unlock()

	current, ok := searcher.latest[key]
	if !ok || current.token != token {
		return false
	}
	delete(searcher.latest, key)
	return true
}

// InFlight returns how many listings currently have a search running.
func (searcher *Searcher) InFlight() int {
	searcher.mu.Lock()
	defer searcher.mu.Unlock()
	return len(searcher.latest)
}
