// Copyright (c) 2026 Polyglot. All rights reserved.
// Author: thuan.dang.dev@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thuandang/polyglot/internal/platform/ctxutil"
	"github.com/thuandang/polyglot/internal/platform/sec"
)

/*
TestContext_RequestID verifies that request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Locale verifies locale injection and the fallback behavior when
the locale middleware never ran.
*/
func TestContext_Locale(t *testing.T) {
	ctx := context.Background()

	// 1. No middleware: the fallback is served
	assert.Equal(t, "en", ctxutil.GetLocale(ctx, "en"))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLocale(ctx, "da")
	assert.Equal(t, "da", ctxutil.GetLocale(ctx, "en"))

	// 3. Empty stored locale still falls back
	ctx = ctxutil.WithLocale(context.Background(), "")
	assert.Equal(t, "en", ctxutil.GetLocale(ctx, "en"))
}

/*
TestContext_Editor verifies that editor claims can be stored in context.
*/
func TestContext_Editor(t *testing.T) {
	ctx := context.Background()
	claims := &sec.AuthClaims{
		EditorID: "editor-123",
		Role:     "admin",
	}

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetEditor(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithEditor(ctx, claims)
	retrieved := ctxutil.GetEditor(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "editor-123", retrieved.EditorID)
	assert.Equal(t, "admin", retrieved.Role)
}
