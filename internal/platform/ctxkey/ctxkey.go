// Copyright (c) 2026 Polyglot. All rights reserved.
// Author: thuan.dang.dev@gmail.com

// Package ctxkey defines typed context keys used by middleware and handlers.
//
// # Safety
//
// It is used to store and retrieve per-request values (locale, editor
// identity, request ID, logger). Using a private, unexported type for keys
// prevents collisions with third-party packages that might also use context
// for storage.
package ctxkey

// key is an unexported type used for context keys to ensure type safety.
//
// # Collision Prevention
//
// Even if another package uses "locale" as a string key, it will not collide
// with this key type because Go's [context.Context] uses both the value AND
// the type for lookups.
type key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyLocale is the context key for the negotiated "current locale" of the
	// request. It is ambient only at the transport layer: handlers read it
	// once and pass it into services as an explicit parameter.
	KeyLocale key = "locale"

	// KeyEditor is the context key for the authenticated editor claims.
	KeyEditor key = "editor"

	// KeyLogger is the context key for the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
