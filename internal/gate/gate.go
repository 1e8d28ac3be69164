// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

/*
Package gate implements the single authorization decision point for
role-protected routes.

Every protected request maps (session claims, required role) to a tagged
decision. Handlers and middleware switch on the decision kind instead of
re-deriving role logic ad hoc, so the redirect rules live in exactly one
place.

Decisions are never cached: sessions can expire asynchronously, so the
route guard re-runs Authorize on every request.
*/
package gate

import (
	"github.com/champastudio/champa/internal/platform/sec"
)

// LoginPath is where anonymous users are sent to authenticate.
const LoginPath = "/login"

// PublicHome is the fallback target for role mismatches with no better home.
const PublicHome = "/"

// Kind discriminates the authorization decision variants.
type Kind int

const (
	// KindAllow lets the request through.
	KindAllow Kind = iota

	// KindRedirectToLogin means the visitor is anonymous but the route
	// requires a role. ReturnTo carries the originally requested location
	// so login can send the user back afterwards.
	KindRedirectToLogin

	// KindRedirectToRoleHome means the user is authenticated but holds the
	// wrong role for this route. Target is the home of the role they do hold.
	KindRedirectToRoleHome
)

// Decision is the tagged result of an authorization check.
type Decision struct {
	Kind Kind

	// ReturnTo is set only for KindRedirectToLogin.
	ReturnTo string

	// Target is set only for KindRedirectToRoleHome.
	Target string
}

/*
Authorize maps the current session and the route's required role to a
[Decision].

# Rules

  - No required role: always Allow (public route), authenticated or not.
  - Anonymous + required role: RedirectToLogin carrying the requested path.
  - Authenticated + matching role: Allow.
  - Authenticated + wrong role: RedirectToRoleHome. A client hitting an
    admin-only route goes to the client home, an admin hitting a
    client-only route goes to the admin home, and any other mismatch
    falls back to the public home.

# Parameters
  - claims: Verified session claims, or nil for anonymous visitors.
  - required: The role the route demands. Zero value means public.
  - requested: The originally requested path, used for the login return trip.
*/
func Authorize(claims *sec.AuthClaims, required sec.UserRole, requested string) Decision {

	// ── 1. Public routes ──────────────────────────────────────────────
	if required == "" {
		return Decision{Kind: KindAllow}
	}

	// ── 2. Anonymous visitors ─────────────────────────────────────────
	if claims == nil {
		return Decision{Kind: KindRedirectToLogin, ReturnTo: requested}
	}

	// ── 3. Role match ─────────────────────────────────────────────────
	role := sec.UserRole(claims.Role)
	if role == required {
		return Decision{Kind: KindAllow}
	}

	// ── 4. Role mismatch tie-break ────────────────────────────────────
	if role.IsValid() {
		return Decision{Kind: KindRedirectToRoleHome, Target: role.Home()}
	}

	return Decision{Kind: KindRedirectToRoleHome, Target: PublicHome}
}
