// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

/*
Package order implements the service order form.

An order is a request for one of the studio's services, optionally narrowed
to a specific package. Both visitors and signed-in clients can place orders;
a client's order is linked to their account. Retried submissions carrying
the same Idempotency-Key resolve to the original order instead of creating
a duplicate.
*/
package order

import "time"

// # Order Status

// Order intake statuses. Orders are triaged by the studio, they are not a
// payment flow.
const (
	StatusNew       = "new"
	StatusConfirmed = "confirmed"
	StatusDeclined  = "declined"
)

// Statuses returns the closed set of valid order statuses.
func Statuses() []string {
	return []string{StatusNew, StatusConfirmed, StatusDeclined}
}

// IdempotencyTTL is how long a submission key blocks duplicates. Long enough
// to cover any client-side retry loop, short enough to let keys recycle.
const IdempotencyTTL = 24 * time.Hour

// # Domain Entity

// Order represents one submitted service request.
type Order struct {
	ID             string    `json:"id"`
	ClientID       *string   `json:"client_id,omitempty"` // nil for guest orders
	ServiceID      string    `json:"service_id"`
	PackageID      *string   `json:"package_id,omitempty"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Note           string    `json:"note,omitempty"`
	Status         string    `json:"status"`
	IdempotencyKey string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldServiceID = "service_id"
	FieldPackageID = "package_id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldNote      = "note"
	FieldStatus    = "status"
)
