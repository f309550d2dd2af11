// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package remote talks to the external media metadata service.

It issues paginated searches, detail lookups and review submissions, and
translates between catalog media types and the service's path segments
(movies ↔ movie, tv-shows ↔ tv, books ↔ book).

Every transport failure, non-2xx status or undecodable body surfaces as a
single UPSTREAM_ERROR so callers can offer a plain retry.

A [Searcher] layered on top makes overlapping searches from one session
latest-request-wins.
*/
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/shelfmark/internal/media"
	"github.com/taibuivan/shelfmark/internal/platform/apperr"
	"github.com/taibuivan/shelfmark/internal/platform/metrics"
	"github.com/taibuivan/shelfmark/pkg/pointer"
	"github.com/taibuivan/shelfmark/pkg/slice"
)

// Operation names used in logs and metrics.
const (
	OpSearch = "search"
	OpDetail = "detail"
	OpReview = "review"
)

const maxResponseBytes = 4 << 20

// # Client

// Client is a thin HTTP wrapper around the remote media service.
// It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	cache      DetailCache
	logger     *slog.Logger
}

// Option customises a [Client].
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(client *Client) { client.httpClient = httpClient }
}

// WithDetailCache enables read-through caching of detail lookups.
func WithDetailCache(cache DetailCache) Option {
	return func(client *Client) { client.cache = cache }
}

// NewClient builds a client for the service rooted at baseURL. Every request
// is bounded by timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, options ...Option) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("remote: invalid base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("remote: base URL must be http or https, got %q", baseURL)
	}

	client := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
	for _, option := range options {
		option(client)
	}
	return client, nil
}

// # Operations

// Search runs GET /search/{segment}?query=&page=. Pages start at 1.
func (client *Client) Search(ctx context.Context, t media.Type, query string, page int) (SearchResult, error) {
	segment, err := Segment(t)
	if err != nil {
		return SearchResult{}, apperr.ValidationError(err.Error())
	}
	page = max(page, 1)

	endpoint := client.baseURL.JoinPath("search", segment)
	endpoint.RawQuery = url.Values{
		"query": {query},
		"page":  {strconv.Itoa(page)},
	}.Encode()

	var body wireSearch
	if err := client.do(ctx, OpSearch, http.MethodGet, endpoint, nil, &body); err != nil {
		return SearchResult{}, err
	}

	return SearchResult{
		Items: slice.Map(body.Results, func(w wireItem) media.MediaItem {
			return w.toMediaItem(t)
		}),
		Page:       page,
		TotalPages: pointer.Fallback(body.TotalPages, 1),
	}, nil
}

// Detail runs GET /media/{segment}/{id}, consulting the detail cache first
// when one is configured.
func (client *Client) Detail(ctx context.Context, t media.Type, id string) (media.MediaItem, error) {
	segment, err := Segment(t)
	if err != nil {
		return media.MediaItem{}, apperr.ValidationError(err.Error())
	}

	if client.cache != nil {
		item, found, err := client.cache.Get(ctx, t, id)
		if err != nil {
			client.logger.WarnContext(ctx, "remote_cache_read_failed", slog.String("id", id), slog.Any("error", err))
		} else if found {
			metrics.CountRemote(OpDetail, metrics.OutcomeCacheHit)
			return item, nil
		}
	}

	var body wireItem
	endpoint := client.baseURL.JoinPath("media", segment, url.PathEscape(id))
	if err := client.do(ctx, OpDetail, http.MethodGet, endpoint, nil, &body); err != nil {
		return media.MediaItem{}, err
	}
	item := body.toMediaItem(t)

	if client.cache != nil {
		if err := client.cache.Set(ctx, t, id, item); err != nil {
			client.logger.WarnContext(ctx, "remote_cache_write_failed", slog.String("id", id), slog.Any("error", err))
		}
	}
	return item, nil
}

// SaveReview runs POST /reviews/{mediaID}. The acknowledgment body is ignored.
func (client *Client) SaveReview(ctx context.Context, mediaID string, input media.ReviewInput) error {
	payload := wireReview{Rating: input.Rating, ReviewText: input.ReviewText, Tags: input.Tags}
	if payload.Tags == nil {
		payload.Tags = []string{}
	}

	endpoint := client.baseURL.JoinPath("reviews", url.PathEscape(mediaID))
	return client.do(ctx, OpReview, http.MethodPost, endpoint, payload, nil)
}

// # Transport

// do performs one round trip and records its outcome.
func (client *Client) do(ctx context.Context, op, method string, endpoint *url.URL, payload, out any) error {
	start := time.Now()
	err := client.roundTrip(ctx, op, method, endpoint, payload, out)

	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
		if ctx.Err() == nil {
			cause := err
			if appErr := apperr.As(err); appErr != nil && appErr.Cause != nil {
				cause = appErr.Cause
			}
			client.logger.WarnContext(ctx, "remote_request_failed",
				slog.String("operation", op),
				slog.String("url", endpoint.Redacted()),
				slog.Any("error", cause),
			)
		}
	}
	metrics.ObserveRemote(op, outcome, time.Since(start))
	return err
}

func (client *Client) roundTrip(ctx context.Context, op, method string, endpoint *url.URL, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return apperr.Internal(fmt.Errorf("remote: %s: encode body: %w", op, err))
		}
		body = bytes.NewReader(raw)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return apperr.BadGateway(fmt.Errorf("remote: %s: build request: %w", op, err))
	}
	request.Header.Set("Accept", "application/json")
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return apperr.BadGateway(fmt.Errorf("remote: %s: %w", op, err))
	}
	defer response.Body.Close()

	limited := io.LimitReader(response.Body, maxResponseBytes)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, limited)
		return apperr.BadGateway(fmt.Errorf("remote: %s: unexpected status %d", op, response.StatusCode))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, limited)
		return nil
	}

	if err := json.NewDecoder(limited).Decode(out); err != nil {
		return apperr.BadGateway(fmt.Errorf("remote: %s: decode response: %w", op, err))
	}
	return nil
}
