// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

/*
Package invoice implements client billing inside the portal.

Invoices are issued by the studio against a client (optionally tied to a
project), denominated in Lao kip. Clients can only read their own invoices;
opening one for the first time stamps it as viewed so the studio knows it
has been seen.
*/
package invoice

import "time"

// # Invoice Status

// Invoice lifecycle statuses.
const (
	StatusDraft     = "draft"
	StatusSent      = "sent"
	StatusViewed    = "viewed"
	StatusPaid      = "paid"
	StatusOverdue   = "overdue"
	StatusCancelled = "cancelled"
)

// Statuses returns the closed set of valid invoice statuses.
func Statuses() []string {
	return []string{StatusDraft, StatusSent, StatusViewed, StatusPaid, StatusOverdue, StatusCancelled}
}

// # Domain Entity

// Invoice represents a single bill issued to a client.
//
// AmountLAK is an integer amount of Lao kip. The kip has no minor unit in
// practice, so no fixed-point scaling is applied.
type Invoice struct {
	ID        string     `json:"id"`
	Number    string     `json:"number"` // Human-facing, e.g. "CHM-2026-0042"
	ClientID  string     `json:"client_id"`
	ProjectID *string    `json:"project_id,omitempty"`
	AmountLAK int64      `json:"amount_lak"`
	Status    string     `json:"status"`
	IssuedAt  *time.Time `json:"issued_at,omitempty"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	ViewedAt  *time.Time `json:"viewed_at,omitempty"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	Note      string     `json:"note,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// # Field Identifiers

const (
	FieldNumber    = "number"
	FieldClientID  = "client_id"
	FieldAmountLAK = "amount_lak"
	FieldStatus    = "status"
	FieldDueDate   = "due_date"
)
