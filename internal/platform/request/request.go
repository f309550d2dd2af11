// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It hides the router's parameter extraction and common body decoding so that
handlers report malformed input the same way.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/shelfmark/internal/platform/apperr"
	"github.com/taibuivan/shelfmark/internal/platform/validate"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	request.Body = http.MaxBytesReader(writer, request.Body, maxBodyBytes)

	decoder := json.NewDecoder(request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// Param retrieves a named URL parameter from the request.
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// RequiredParam retrieves a named URL parameter and fails when it is blank.
func RequiredParam(request *http.Request, name string) (string, error) {
	value := strings.TrimSpace(chi.URLParam(request, name))
	if value == "" {
		return "", validate.RequiredError(name, "This field is required")
	}
	return value, nil
}

/*
Float parses an optional float query parameter.

An absent parameter yields the fallback; a present but malformed one is a
validation error naming the parameter.
*/
func Float(request *http.Request, name string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(request.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   name,
			Message: "Must be a number",
		})
	}
	return value, nil
}

// Int parses an optional integer query parameter the same way as [Float].
func Int(request *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(request.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   name,
			Message: "Must be an integer",
		})
	}
	return value, nil
}
