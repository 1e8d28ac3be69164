// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

package gate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/champastudio/champa/internal/gate"
	"github.com/champastudio/champa/internal/platform/sec"
)

func claimsFor(role sec.UserRole) *sec.AuthClaims {
	return &sec.AuthClaims{
		UserID: "0191d9b8-0000-7000-8000-000000000001",
		Email:  "user@example.la",
		Role:   string(role),
	}
}

/*
TestAuthorize_RedirectTable exercises the full decision table, including
the role-mismatch tie-breaks.
*/
func TestAuthorize_RedirectTable(t *testing.T) {
	tests := []struct {
		name      string
		claims    *sec.AuthClaims
		required  sec.UserRole
		requested string
		wantKind  gate.Kind
		wantRet   string
		wantHome  string
	}{
		{
			name:      "anonymous_public_route",
			claims:    nil,
			required:  "",
			requested: "/portfolio",
			wantKind:  gate.KindAllow,
		},
		{
			name:      "anonymous_client_route",
			claims:    nil,
			required:  sec.RoleClient,
			requested: "/client/projects",
			wantKind:  gate.KindRedirectToLogin,
			wantRet:   "/client/projects",
		},
		{
			name:      "anonymous_admin_route",
			claims:    nil,
			required:  sec.RoleAdmin,
			requested: "/admin/orders",
			wantKind:  gate.KindRedirectToLogin,
			wantRet:   "/admin/orders",
		},
		{
			name:      "authenticated_no_required_role",
			claims:    claimsFor(sec.RoleAdmin),
			required:  "",
			requested: "/services",
			wantKind:  gate.KindAllow,
		},
		{
			name:      "client_on_client_route",
			claims:    claimsFor(sec.RoleClient),
			required:  sec.RoleClient,
			requested: "/client/invoices",
			wantKind:  gate.KindAllow,
		},
		{
			name:      "admin_on_admin_route",
			claims:    claimsFor(sec.RoleAdmin),
			required:  sec.RoleAdmin,
			requested: "/admin",
			wantKind:  gate.KindAllow,
		},
		{
			name:      "client_on_admin_route_goes_to_client_home",
			claims:    claimsFor(sec.RoleClient),
			required:  sec.RoleAdmin,
			requested: "/admin/clients",
			wantKind:  gate.KindRedirectToRoleHome,
			wantHome:  "/client",
		},
		{
			name:      "admin_on_client_route_goes_to_admin_home",
			claims:    claimsFor(sec.RoleAdmin),
			required:  sec.RoleClient,
			requested: "/client/projects",
			wantKind:  gate.KindRedirectToRoleHome,
			wantHome:  "/admin",
		},
		{
			name:      "unknown_role_falls_back_to_public_home",
			claims:    claimsFor(sec.UserRole("superuser")),
			required:  sec.RoleAdmin,
			requested: "/admin",
			wantKind:  gate.KindRedirectToRoleHome,
			wantHome:  "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := gate.Authorize(tt.claims, tt.required, tt.requested)

			assert.Equal(t, tt.wantKind, decision.Kind)
			assert.Equal(t, tt.wantRet, decision.ReturnTo)
			assert.Equal(t, tt.wantHome, decision.Target)
		})
	}
}

/*
TestAuthorize_NoCaching verifies the gate is a pure function of its inputs:
the same session object yields fresh decisions as routes change.
*/
func TestAuthorize_NoCaching(t *testing.T) {
	client := claimsFor(sec.RoleClient)

	first := gate.Authorize(client, sec.RoleClient, "/client")
	assert.Equal(t, gate.KindAllow, first.Kind)

	second := gate.Authorize(client, sec.RoleAdmin, "/admin")
	assert.Equal(t, gate.KindRedirectToRoleHome, second.Kind)

	// Session expiry between navigations: claims become nil.
	third := gate.Authorize(nil, sec.RoleClient, "/client")
	assert.Equal(t, gate.KindRedirectToLogin, third.Kind)
}
