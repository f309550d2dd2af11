// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/shelfmark/internal/platform/constants"
	"github.com/taibuivan/shelfmark/pkg/uuid"
)

// # Service Layer

// Service answers catalog queries and records reviews.
//
// Every listing is derived from a fresh repository snapshot.
type Service struct {
	repo      Repository
	forwarder ReviewForwarder
	logger    *slog.Logger
	now       func() time.Time
}

// NewService constructs a [Service]. forwarder may be nil, in which case
// reviews are stored locally only.
func NewService(repo Repository, forwarder ReviewForwarder, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		forwarder: forwarder,
		logger:    logger,
		now:       time.Now,
	}
}

// # Catalog Lookups

// List derives a listing over the whole catalog, or over one media type when
// t is not empty.
func (service *Service) List(ctx context.Context, t Type, config ListingConfig) ([]MediaItem, error) {
	items, err := service.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if t != "" {
		items = ByType(items, t)
	}
	return Derive(items, config), nil
}

// Get fetches one item by id.
func (service *Service) Get(ctx context.Context, id string) (MediaItem, error) {
	return service.repo.Get(ctx, id)
}

// ByTag derives a listing over the items carrying the named tag. An unknown
// tag yields an empty listing.
func (service *Service) ByTag(ctx context.Context, name string, config ListingConfig) ([]MediaItem, error) {
	items, err := service.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Derive(ByTag(items, name), config), nil
}

// Tags summarises every tag in the catalog.
func (service *Service) Tags(ctx context.Context) ([]Tag, error) {
	items, err := service.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Tags(items), nil
}

// Dashboard returns the recent, top-rated and tag rails.
func (service *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	items, err := service.repo.List(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	return BuildDashboard(items, constants.DashboardLimit), nil
}

// Reviews lists the saved reviews for an item, newest first.
func (service *Service) Reviews(ctx context.Context, mediaID string) ([]Review, error) {
	return service.repo.Reviews(ctx, mediaID)
}

// # Reviews

/*
SaveReview records a personal review of a catalog item.

The input is normalized and validated first. When a remote service is
configured the review is forwarded to it, and only a successful forward is
applied locally, so the two never disagree.

Returns:
  - Review: the stored review with its generated id
  - MediaItem: the item after its rating, text and tags were replaced
  - error: NOT_FOUND, VALIDATION_ERROR, UPSTREAM_ERROR or storage errors
*/
func (service *Service) SaveReview(ctx context.Context, mediaID string, input ReviewInput, reviewerID string) (Review, MediaItem, error) {
	item, err := service.repo.Get(ctx, mediaID)
	if err != nil {
		return Review{}, MediaItem{}, err
	}

	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return Review{}, MediaItem{}, err
	}

	if service.forwarder != nil {
		if err := service.forwarder.SaveReview(ctx, mediaID, input); err != nil {
			return Review{}, MediaItem{}, err
		}
	}

	review := Review{
		ID:           uuid.New(),
		MediaID:      item.ID,
		MediaType:    item.Type,
		Rating:       input.Rating,
		ReviewText:   input.ReviewText,
		Tags:         input.Tags,
		ReviewerID:   reviewerID,
		DateReviewed: service.now().UTC(),
	}

	updated, err := service.repo.ApplyReview(ctx, review)
	if err != nil {
		return Review{}, MediaItem{}, err
	}

	service.logger.InfoContext(ctx, "media_review_saved",
		slog.String("media_id", review.MediaID),
		slog.String("review_id", review.ID),
		slog.Float64("rating", review.Rating),
		slog.Int("tag_count", len(review.Tags)),
		slog.Bool("forwarded", service.forwarder != nil),
	)

	return review, updated, nil
}
