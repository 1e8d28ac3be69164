// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

// Package ctxkey defines the typed context keys shared across middleware
// and handlers. Keeping them in one leaf package avoids import cycles
// between the middleware chain and the helpers that read the values.
package ctxkey

// Key is the private type for context keys to prevent collisions with
// other packages' context values.
type Key string

const (
	// KeyRequestID carries the per-request correlation ID.
	KeyRequestID Key = "request_id"

	// KeyLogger carries the request-scoped *slog.Logger.
	KeyLogger Key = "logger"

	// KeyUser carries the authenticated *sec.AuthClaims, when present.
	KeyUser Key = "user_claims"

	// KeyLang carries the negotiated display language for the request.
	KeyLang Key = "lang"
)
