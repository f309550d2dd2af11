// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"strings"

	"github.com/taibuivan/shelfmark/internal/platform/validate"
	"github.com/taibuivan/shelfmark/internal/rating"
	"github.com/taibuivan/shelfmark/pkg/slice"
)

const (
	maxReviewTextLen = 5000
	maxReviewTags    = 20
	maxTagLen        = 50
)

// ReviewInput is the body of a review-save request.
type ReviewInput struct {
	Rating     float64  `json:"rating"`
	ReviewText string   `json:"review_text"`
	Tags       []string `json:"tags"`
}

// ReviewForwarder sends a saved review to the remote metadata service.
type ReviewForwarder interface {
	SaveReview(ctx context.Context, mediaID string, input ReviewInput) error
}

// Normalize trims the review text and tags, drops blank tags and removes
// repeated tags keeping the first occurrence. Tags is never nil afterwards.
func (input ReviewInput) Normalize() ReviewInput {
	tags := make([]string, 0, len(input.Tags))
	for _, tag := range input.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return ReviewInput{
		Rating:     input.Rating,
		ReviewText: strings.TrimSpace(input.ReviewText),
		Tags:       slice.Unique(tags),
	}
}

// Validate checks a normalized input.
func (input ReviewInput) Validate() error {
	validator := &validate.Validator{}

	validator.Custom(FieldRating, !rating.OnGrid(input.Rating), "Must be a multiple of 0.5 between 0 and 5")
	validator.MaxLen(FieldReviewText, input.ReviewText, maxReviewTextLen)
	validator.Custom(FieldTags, len(input.Tags) > maxReviewTags, "At most 20 tags are allowed")

	for _, tag := range input.Tags {
		validator.MaxLen(FieldTags, tag, maxTagLen)
	}

	return validator.Err()
}
