// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package rating

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/shelfmark/internal/platform/apperr"
	requestutil "github.com/taibuivan/shelfmark/internal/platform/request"
	"github.com/taibuivan/shelfmark/internal/platform/respond"
	"github.com/taibuivan/shelfmark/internal/platform/validate"
)

// Display is a rendered rating.
type Display struct {
	Rating float64         `json:"rating"`
	Slots  [SlotCount]Slot `json:"slots"`
	Glyphs string          `json:"glyphs"`
}

// NewDisplay renders r with the given glyph set.
func NewDisplay(r float64, set GlyphSet) Display {
	return Display{Rating: Clamp(r), Slots: Render(r), Glyphs: Glyphs(r, set)}
}

// Routes returns the /stars router.
func Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", render)
	router.Get("/slots/{slot}", fromSlot)
	return router
}

/*
GET /api/v1/stars.

Request:
  - rating: float (required)
  - ascii: bool (optional)

Response:
  - 200: Display
  - 400: ErrValidation
*/
func render(writer http.ResponseWriter, request *http.Request) {
	raw := request.URL.Query().Get("rating")
	if raw == "" {
		respond.Error(writer, request, validate.RequiredError("rating", "This field is required"))
		return
	}

	r, err := requestutil.Float(request, "rating", 0)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	set := UnicodeGlyphs
	if ascii, _ := strconv.ParseBool(request.URL.Query().Get("ascii")); ascii {
		set = ASCIIGlyphs
	}
	respond.OK(writer, NewDisplay(r, set))
}

// fromSlot handles GET /api/v1/stars/slots/{slot}: the rating a click on slot selects.
func fromSlot(writer http.ResponseWriter, request *http.Request) {
	slot, err := strconv.Atoi(requestutil.Param(request, "slot"))
	if err != nil {
		respond.Error(writer, request, validate.RequiredError("slot", "Must be an integer"))
		return
	}

	r, err := FromSlot(slot)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError(err.Error(), apperr.FieldError{
			Field:   "slot",
			Message: "Must be between 0 and 9",
		}))
		return
	}
	respond.OK(writer, map[string]float64{"rating": r})
}
