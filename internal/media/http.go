// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/shelfmark/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/shelfmark/internal/platform/request"
	"github.com/taibuivan/shelfmark/internal/platform/respond"
	"github.com/taibuivan/shelfmark/internal/platform/validate"
	"github.com/taibuivan/shelfmark/pkg/pagination"
	"github.com/taibuivan/shelfmark/pkg/query"
)

// # Handler Implementation

// Handler implements the HTTP layer for the catalog.
type Handler struct {
	service     *Service
	reviewGuard func(http.Handler) http.Handler
}

// NewHandler constructs a catalog [Handler].
//
// reviewGuard wraps the review-save route (for example with
// middleware.RequireAuth); nil leaves the route open.
func NewHandler(service *Service, reviewGuard func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, reviewGuard: reviewGuard}
}

// Routes returns the /media router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listMedia)
	router.Get("/{id}", handler.getMedia)
	router.Get("/{id}/reviews", handler.listReviews)

	router.Group(func(protected chi.Router) {
		if handler.reviewGuard != nil {
			protected.Use(handler.reviewGuard)
		}
		protected.Post("/{id}/review", handler.saveReview)
	})

	return router
}

// TagRoutes returns the /tags router.
func (handler *Handler) TagRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listTags)
	router.Get("/{name}/media", handler.listTagMedia)
	return router
}

// # Listing Parameters

/*
listingFromRequest reads the shared listing query parameters.

Request:
  - tags: []string (repeated or comma separated; any match)
  - rating: float (minimum rating, 0 to 5)
  - year: string ("2010" or "2008-2013"; malformed values match nothing)
  - sort: string (title, year, rating, dateAdded)
  - dir: string (asc, desc)
*/
func listingFromRequest(request *http.Request) (ListingConfig, error) {
	values := request.URL.Query()

	minRating, err := requestutil.Float(request, FieldRating, 0)
	if err != nil {
		return ListingConfig{}, err
	}

	validator := &validate.Validator{}
	validator.FloatRange(FieldRating, minRating, 0, 5)

	if raw := values.Get(FieldSort); raw != "" {
		validator.OneOf(FieldSort, raw,
			string(SortTitle), string(SortYear), string(SortRating), string(SortDateAdded))
	}
	if raw := values.Get(FieldDirection); raw != "" {
		validator.OneOf(FieldDirection, raw, string(Ascending), string(Descending))
	}
	if err := validator.Err(); err != nil {
		return ListingConfig{}, err
	}

	sortConfig, err := ParseSort(values.Get(FieldSort), values.Get(FieldDirection))
	if err != nil {
		return ListingConfig{}, validate.RequiredError(FieldSort, err.Error())
	}

	return ListingConfig{
		Filter: NewFilter(query.Values(values, FieldTags), minRating, values.Get(FieldYear)),
		Sort:   sortConfig,
	}, nil
}

// # Media Endpoints

/*
GET /api/v1/media.

Description: Lists the catalog, optionally restricted to one media type,
filtered and sorted per the listing parameters and paginated.

Request:
  - type: string (movies, tv-shows, books)
  - listing parameters (see listingFromRequest)
  - page, limit: int

Response:
  - 200: []MediaItem with pagination meta
  - 400: ErrValidation
*/
func (handler *Handler) listMedia(writer http.ResponseWriter, request *http.Request) {
	var mediaType Type
	if raw := request.URL.Query().Get(FieldType); raw != "" {
		parsed, err := ParseType(raw)
		if err != nil {
			validator := &validate.Validator{}
			validator.OneOf(FieldType, raw, string(TypeMovie), string(TypeShow), string(TypeBook))
			respond.Error(writer, request, validator.Err())
			return
		}
		mediaType = parsed
	}

	config, err := listingFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.service.List(request.Context(), mediaType, config)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, meta := pagination.Window(items, pagination.FromRequest(request))
	respond.Paginated(writer, page, meta)
}

/*
GET /api/v1/media/{id}.

Response:
  - 200: MediaItem
  - 404: ErrNotFound
*/
func (handler *Handler) getMedia(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	reviews, err := handler.service.Reviews(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviews)
}

type savedReview struct {
	Review Review    `json:"review"`
	Media  MediaItem `json:"media"`
}

/*
POST /api/v1/media/{id}/review.

Description: Saves a personal review, forwarding it to the remote service
when one is configured.

Request:
  - rating: float (0 to 5, multiple of 0.5)
  - review_text: string
  - tags: []string

Response:
  - 201: {review, media}
  - 400: ErrValidation
  - 401: ErrUnauthorized (when reviews require a token)
  - 404: ErrNotFound
  - 502: ErrUpstream
*/
func (handler *Handler) saveReview(writer http.ResponseWriter, request *http.Request) {
	mediaID, err := requestutil.RequiredParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input ReviewInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var reviewerID string
	if claims := ctxutil.GetAuthUser(request.Context()); claims != nil {
		reviewerID = claims.UserID
	}

	review, item, err := handler.service.SaveReview(request.Context(), mediaID, input, reviewerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, savedReview{Review: review, Media: item})
}

// # Tag & Dashboard Endpoints

func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.Tags(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}

/*
GET /api/v1/tags/{name}/media.

Description: Lists the items carrying the exact tag name. Accepts the same
listing and pagination parameters as GET /media.
*/
func (handler *Handler) listTagMedia(writer http.ResponseWriter, request *http.Request) {
	config, err := listingFromRequest(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.service.ByTag(request.Context(), requestutil.Param(request, "name"), config)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, meta := pagination.Window(items, pagination.FromRequest(request))
	respond.Paginated(writer, page, meta)
}

// Dashboard handles GET /api/v1/dashboard.
func (handler *Handler) Dashboard(writer http.ResponseWriter, request *http.Request) {
	dashboard, err := handler.service.Dashboard(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, dashboard)
}
