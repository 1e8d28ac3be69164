// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

package ctxutil_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champastudio/champa/internal/platform/ctxutil"
	"github.com/champastudio/champa/internal/platform/sec"
	"github.com/champastudio/champa/pkg/i18n"
)

/*
TestRequestID round-trips the correlation ID through the context.
*/
func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

/*
TestLogger falls back to the default logger when none is attached.
*/
func TestLogger(t *testing.T) {
	ctx := context.Background()
	require.NotNil(t, ctxutil.GetLogger(ctx))

	custom := slog.Default().With(slog.String("scope", "test"))
	ctx = ctxutil.WithLogger(ctx, custom)
	assert.Same(t, custom, ctxutil.GetLogger(ctx))
}

/*
TestAuthUser returns nil for anonymous contexts and the claims otherwise.
*/
func TestAuthUser(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ctxutil.GetAuthUser(ctx))

	claims := &sec.AuthClaims{UserID: "u1", Role: string(sec.RoleClient)}
	ctx = ctxutil.WithAuthUser(ctx, claims)
	assert.Same(t, claims, ctxutil.GetAuthUser(ctx))
}

/*
TestLang defaults to English and round-trips the negotiated language.
*/
func TestLang(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, i18n.DefaultLang, ctxutil.GetLang(ctx))

	ctx = ctxutil.WithLang(ctx, i18n.LangLao)
	assert.Equal(t, i18n.LangLao, ctxutil.GetLang(ctx))
}
