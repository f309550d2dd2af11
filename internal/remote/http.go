// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package remote

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/shelfmark/internal/media"
	"github.com/taibuivan/shelfmark/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/shelfmark/internal/platform/request"
	"github.com/taibuivan/shelfmark/internal/platform/respond"
	"github.com/taibuivan/shelfmark/internal/platform/validate"
)

const maxSearchPage = 1000

// Handler exposes remote search and detail lookups.
type Handler struct {
	client   *Client
	searcher *Searcher
}

// NewHandler constructs a search [Handler].
func NewHandler(client *Client, searcher *Searcher) *Handler {
	return &Handler{client: client, searcher: searcher}
}

// Routes returns the /search router. Mount it behind middleware.SearchSession.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{type}", handler.search)
	router.Get("/{type}/{id}", handler.detail)
	return router
}

func typeParam(request *http.Request) (media.Type, error) {
	raw := requestutil.Param(request, media.FieldType)
	t, err := media.ParseType(raw)
	if err != nil {
		validator := &validate.Validator{}
		validator.OneOf(media.FieldType, raw, string(media.TypeMovie), string(media.TypeShow), string(media.TypeBook))
		return "", validator.Err()
	}
	return t, nil
}

/*
GET /api/v1/search/{type}.

Description: Searches the remote service. A newer search of the same type
from the same session (X-Search-Session header, else client IP) supersedes
this one.

Request:
  - query: string (required)
  - page: int (default 1)

Response:
  - 200: SearchResult
  - 400: ErrValidation
  - 409: ErrSuperseded
  - 502: ErrUpstream
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	t, err := typeParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := requestutil.Int(request, "page", 1)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	query := request.URL.Query().Get("query")
	validator := &validate.Validator{}
	validator.Required("query", query).MaxLen("query", query, 200).Range("page", page, 1, maxSearchPage)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session := ctxutil.GetSearchSession(request.Context())
	result, err := handler.searcher.Search(request.Context(), session, t, query, page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

/*
GET /api/v1/search/{type}/{id}.

Response:
  - 200: MediaItem
  - 502: ErrUpstream
*/
func (handler *Handler) detail(writer http.ResponseWriter, request *http.Request) {
	t, err := typeParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.RequiredParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.client.Detail(request.Context(), t, id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}
