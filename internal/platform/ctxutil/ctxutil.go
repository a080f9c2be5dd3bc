// Copyright (c) 2026 Polyglot. All rights reserved.
// Author: thuan.dang.dev@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/thuandang/polyglot/internal/platform/ctxkey"
	"github.com/thuandang/polyglot/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Locale Resolution

// WithLocale returns a new context carrying the negotiated current locale.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLocale, locale)
}

// GetLocale retrieves the negotiated locale from the context.
//
// It returns the fallback when the middleware never ran (e.g. in unit tests
// or internal jobs), so callers always hold a non-empty locale code.
func GetLocale(ctx context.Context, fallback string) string {
	locale, ok := ctx.Value(ctxkey.KeyLocale).(string)
	if !ok || locale == "" {
		return fallback
	}
	return locale
}

// # Identity & Access

// WithEditor returns a new context with the provided editor claims attached.
func WithEditor(ctx context.Context, claims *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyEditor, claims)
}

// GetEditor retrieves the [*sec.AuthClaims] from the [context.Context].
func GetEditor(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(ctxkey.KeyEditor).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}
