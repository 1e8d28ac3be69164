// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

// Package contact handles the public contact form and its back-office inbox.
package contact

import (
	"time"

	"github.com/champastudio/champa/pkg/i18n"
)

// Inbox statuses for a submitted message.
const (
	StatusNew      = "new"
	StatusRead     = "read"
	StatusArchived = "archived"
)

// Statuses returns all valid inbox statuses.
func Statuses() []string {
	return []string{StatusNew, StatusRead, StatusArchived}
}

// Message is one contact form submission. Lang records the language the
// visitor was browsing in, so replies can be written in it.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Lang      i18n.Lang `json:"lang"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Field name constants for validation errors
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
	FieldStatus  = "status"
)
