// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/shelfmark/internal/platform/apperr"
)

// Wrap classifies a database error as an [apperr.AppError].
//
// Missing rows become NOT_FOUND for resource; everything else is INTERNAL
// with the action recorded in the cause for the server log.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
