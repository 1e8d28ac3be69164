// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

/*
Package project implements the client portal's project tracking domain.

A project is the unit of work the studio delivers to a client: it carries a
status, a schedule, a message thread between the client and the studio, and
a set of shared files stored in the object store.

# Access Model

Clients see only projects whose ClientID matches their account. Admins see
everything. Ownership is enforced in the service layer so every transport
goes through the same check.
*/
package project

import (
	"time"
)

// # Project Status

// Project lifecycle statuses. The portal renders these as the project
// timeline, so the order here mirrors the usual progression.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusReview     = "review"
	StatusCompleted  = "completed"
	StatusOnHold     = "on_hold"
)

// Statuses returns the closed set of valid project statuses.
func Statuses() []string {
	return []string{StatusPending, StatusInProgress, StatusReview, StatusCompleted, StatusOnHold}
}

// # Domain Entities

// Project represents a single client engagement.
type Project struct {
	ID          string     `json:"id"`
	ClientID    string     `json:"client_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Message is a single entry in a project's conversation thread.
type Message struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// File is the stored metadata for an object uploaded to a project.
// The binary itself lives in the object store under ObjectKey.
type File struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	UploaderID  string    `json:"uploader_id"`
	FileName    string    `json:"file_name"`
	ObjectKey   string    `json:"-"` // Internal addressing, never exposed raw.
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

// FileView is the transport shape of a [File] with a resolved download URL.
type FileView struct {
	File
	URL string `json:"url"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the project domain.
const (
	FieldClientID  = "client_id"
	FieldTitle     = "title"
	FieldStatus    = "status"
	FieldBody      = "body"
	FieldFile      = "file"
	FieldFileName  = "file_name"
	FieldStartDate = "start_date"
	FieldDueDate   = "due_date"
)
