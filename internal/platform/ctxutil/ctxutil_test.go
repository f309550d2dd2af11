// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/shelfmark/internal/platform/ctxutil"
	"github.com/taibuivan/shelfmark/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "test-request-id")
	assert.Equal(t, "test-request-id", ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Falls back to the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_AuthUser verifies that AuthClaims can be stored in context.
*/
func TestContext_AuthUser(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, ctxutil.GetAuthUser(ctx))

	ctx = ctxutil.WithAuthUser(ctx, &sec.AuthClaims{UserID: "reviewer-1", Username: "ana"})
	retrieved := ctxutil.GetAuthUser(ctx)

	if assert.NotNil(t, retrieved) {
		assert.Equal(t, "reviewer-1", retrieved.UserID)
		assert.Equal(t, "ana", retrieved.Username)
	}
}

/*
TestContext_SearchSession verifies the search session round trip.
*/
func TestContext_SearchSession(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, ctxutil.GetSearchSession(ctx))

	ctx = ctxutil.WithSearchSession(ctx, "tab-7")
	assert.Equal(t, "tab-7", ctxutil.GetSearchSession(ctx))
}
