// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

package contact

import "context"

// Repository persists contact messages.
type Repository interface {
	// List returns every message, newest first.
	List(ctx context.Context) ([]*Message, error)

	// GetByID returns one message or apperr.NotFound.
	GetByID(ctx context.Context, id string) (*Message, error)

	// Create inserts a new message.
	Create(ctx context.Context, message *Message) error

	// UpdateStatus moves a message through the inbox workflow.
	UpdateStatus(ctx context.Context, id, status string) (*Message, error)
}
