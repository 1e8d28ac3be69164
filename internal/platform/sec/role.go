// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
//
// Visitors are not a stored role: an anonymous request simply carries no
// claims. Exactly one role is attached to an account at a time, and the
// role is never settable through any public payload.
type UserRole string

const (
	// Unrestricted back-office access
	RoleAdmin UserRole = "admin"

	// Portal access to the account's own projects, files, and invoices
	RoleClient UserRole = "client"
)

// IsValid reports whether r is a recognised stored role.
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleClient
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Sparse scale leaves room for intermediate roles (e.g. staff)
	switch r {
	case RoleAdmin:
		return 30
	case RoleClient:
		return 10
	default:
		return 0
	}
}

// Home returns the landing path for the role, used by the session gate
// when redirecting a user away from a page they cannot access.
func (r UserRole) Home() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleClient:
		return "/client"
	default:
		return "/"
	}
}
