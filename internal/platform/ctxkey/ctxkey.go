// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

// Package ctxkey defines typed context keys used by middleware and handlers.
//
// Keys use a private, unexported type so they can never collide with context
// values set by third-party packages, even when the string happens to match.
package ctxkey

type key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyUser is the context key for the authenticated user claims.
	KeyUser key = "user"

	// KeyLogger is the context key for the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
