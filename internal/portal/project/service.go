package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/champastudio/champa/internal/platform/apperr"
	"github.com/champastudio/champa/internal/platform/constants"
	"github.com/champastudio/champa/internal/platform/sec"
	"github.com/champastudio/champa/internal/platform/validate"
	"github.com/champastudio/champa/pkg/uuid"
)

// ObjectStore is the subset of the storage client the project domain needs.
type ObjectStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	Remove(ctx context.Context, key string) error
	PublicURL(key string) string
}

type Service struct {
	repo    Repository
	objects ObjectStore
	logger  *slog.Logger
}

func NewService(repo Repository, objects ObjectStore, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		objects: objects,
		logger:  logger,
	}
}

// # Ownership

// authorize resolves the project and enforces the portal access model:
// admins reach every project, clients only their own. Foreign projects
// answer NotFound rather than Forbidden so their existence never leaks.
func (service *Service) authorize(context context.Context, actor *sec.AuthClaims, projectID string) (*Project, error) {
	if actor == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	proj, err := service.repo.GetByID(context, projectID)
	if err != nil {
		return nil, err
	}

	if actor.Role != string(sec.RoleAdmin) && proj.ClientID != actor.UserID {
		return nil, apperr.NotFound("Project")
	}

	return proj, nil
}

// # Project Lifecycle

// ListProjects returns the projects visible to the actor: every project for
// admins, only owned ones for clients.
func (service *Service) ListProjects(context context.Context, actor *sec.AuthClaims) ([]*Project, error) {
	if actor == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	if actor.Role == string(sec.RoleAdmin) {
		return service.repo.ListAll(context)
	}

	return service.repo.ListByClient(context, actor.UserID)
}

// GetProject resolves a single project after the ownership check.
func (service *Service) GetProject(context context.Context, actor *sec.AuthClaims, projectID string) (*Project, error) {
	return service.authorize(context, actor, projectID)
}

// CreateProjectInput defines the admin payload for opening a new engagement.
type CreateProjectInput struct {
	ClientID    string
	Title       string
	Description string
	Status      string
	StartDate   *time.Time
	DueDate     *time.Time
}

// CreateProject opens a new engagement for a client. Admin only, enforced
// at the routing layer.
func (service *Service) CreateProject(context context.Context, input CreateProjectInput) (*Project, error) {
	if input.Status == "" {
		input.Status = StatusPending
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldClientID, input.ClientID).
		UUID(FieldClientID, input.ClientID).
		Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 200).
		OneOf(FieldStatus, input.Status, Statuses()...)

	if input.StartDate != nil && input.DueDate != nil && input.DueDate.Before(*input.StartDate) {
		validator.Custom(FieldDueDate, true, "Due date must not precede the start date")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	proj := &Project{
		ID:          uuid.New(),
		ClientID:    input.ClientID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		StartDate:   input.StartDate,
		DueDate:     input.DueDate,
	}

	if err := service.repo.Create(context, proj); err != nil {
		return nil, err
	}

	service.logger.Info("project_created",
		slog.String("project_id", proj.ID),
		slog.String("client_id", proj.ClientID),
	)
	return proj, nil
}

// UpdateProjectInput is the admin partial-update payload.
type UpdateProjectInput struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	DueDate     *time.Time
}

// UpdateProject applies a partial set of changes to an engagement.
func (service *Service) UpdateProject(context context.Context, id string, input UpdateProjectInput) (*Project, error) {
	proj, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if input.Title != nil {
		validator.Required(FieldTitle, *input.Title).MaxLen(FieldTitle, *input.Title, 200)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Title != nil {
		proj.Title = *input.Title
	}
	if input.Description != nil {
		proj.Description = *input.Description
	}
	if input.StartDate != nil {
		proj.StartDate = input.StartDate
	}
	if input.DueDate != nil {
		proj.DueDate = input.DueDate
	}

	if err := service.repo.Update(context, proj); err != nil {
		return nil, err
	}

	service.logger.Info("project_updated", slog.String("project_id", id))
	return proj, nil
}

// UpdateStatus moves a project through its lifecycle.
func (service *Service) UpdateStatus(context context.Context, id, status string) (*Project, error) {
	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, status, Statuses()...)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	proj, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	proj.Status = status
	if err := service.repo.Update(context, proj); err != nil {
		return nil, err
	}

	service.logger.Info("project_status_changed",
		slog.String("project_id", id),
		slog.String("status", status),
	)
	return proj, nil
}

// DeleteProject soft-deletes an engagement.
func (service *Service) DeleteProject(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("project_deleted", slog.String("project_id", id))
	return nil
}

// # Message Thread

// ListMessages returns the project's conversation thread, oldest first.
func (service *Service) ListMessages(context context.Context, actor *sec.AuthClaims, projectID string) ([]*Message, error) {
	if _, err := service.authorize(context, actor, projectID); err != nil {
		return nil, err
	}

	return service.repo.ListMessages(context, projectID)
}

// PostMessage appends an entry to the project thread. Validation runs fully
// before the ownership lookup so a blank form costs no queries.
func (service *Service) PostMessage(context context.Context, actor *sec.AuthClaims, projectID, body string) (*Message, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldBody, body).
		MaxLen(FieldBody, body, 2000)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if _, err := service.authorize(context, actor, projectID); err != nil {
		return nil, err
	}

	message := &Message{
		ID:        uuid.New(),
		ProjectID: projectID,
		AuthorID:  actor.UserID,
		Body:      body,
	}

	if err := service.repo.CreateMessage(context, message); err != nil {
		return nil, err
	}

	service.logger.Info("project_message_posted",
		slog.String("project_id", projectID),
		slog.String("author_id", actor.UserID),
	)
	return message, nil
}

// # Shared Files

// ListFiles returns the project's files with resolved download URLs.
func (service *Service) ListFiles(context context.Context, actor *sec.AuthClaims, projectID string) ([]FileView, error) {
	if _, err := service.authorize(context, actor, projectID); err != nil {
		return nil, err
	}

	files, err := service.repo.ListFiles(context, projectID)
	if err != nil {
		return nil, err
	}

	views := make([]FileView, 0, len(files))
	for _, file := range files {
		views = append(views, FileView{File: *file, URL: service.objects.PublicURL(file.ObjectKey)})
	}

	return views, nil
}

// UploadFileInput carries one incoming multipart file.
type UploadFileInput struct {
	FileName    string
	ContentType string
	SizeBytes   int64
	Body        io.Reader
}

/*
UploadFile stores a file against the project.

Description: Size and name validation run before the object store is
contacted, so an oversized upload never consumes bandwidth or storage.
On a metadata write failure the freshly stored object is removed again.

Parameters:
  - context: context.Context
  - actor: *sec.AuthClaims
  - projectID: string
  - input: UploadFileInput

Returns:
  - *FileView: Stored file with its download URL
  - error: Validation, ownership, storage, or persistence failures
*/
func (service *Service) UploadFile(context context.Context, actor *sec.AuthClaims, projectID string, input UploadFileInput) (*FileView, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldFileName, input.FileName).
		MaxBytes(FieldFile, input.SizeBytes, constants.MaxUploadBytes)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if _, err := service.authorize(context, actor, projectID); err != nil {
		return nil, err
	}

	file := &File{
		ID:          uuid.New(),
		ProjectID:   projectID,
		UploaderID:  actor.UserID,
		FileName:    sanitizeFileName(input.FileName),
		ContentType: input.ContentType,
		SizeBytes:   input.SizeBytes,
	}
	file.ObjectKey = "projects/" + projectID + "/" + file.ID + "-" + file.FileName

	if err := service.objects.Upload(context, file.ObjectKey, input.Body, input.ContentType); err != nil {
		return nil, fmt.Errorf("project_service_upload_failed: %w", err)
	}

	if err := service.repo.CreateFile(context, file); err != nil {
		// Keep storage and metadata consistent.
		_ = service.objects.Remove(context, file.ObjectKey)
		return nil, fmt.Errorf("project_service_file_record_failed: %w", err)
	}

	service.logger.Info("project_file_uploaded",
		slog.String("project_id", projectID),
		slog.String("file_id", file.ID),
		slog.Int64("size_bytes", file.SizeBytes),
	)

	return &FileView{File: *file, URL: service.objects.PublicURL(file.ObjectKey)}, nil
}

// DeleteFile removes a file's metadata and then its stored object.
// Clients may delete only their own uploads; admins may delete anything.
func (service *Service) DeleteFile(context context.Context, actor *sec.AuthClaims, projectID, fileID string) error {
	if _, err := service.authorize(context, actor, projectID); err != nil {
		return err
	}

	file, err := service.repo.GetFile(context, projectID, fileID)
	if err != nil {
		return err
	}

	if actor.Role != string(sec.RoleAdmin) && file.UploaderID != actor.UserID {
		return apperr.Forbidden("Only the uploader can remove this file")
	}

	if err := service.repo.DeleteFile(context, projectID, fileID); err != nil {
		return err
	}

	// Best effort: the row is authoritative, a dangling object is harmless.
	_ = service.objects.Remove(context, file.ObjectKey)

	service.logger.Warn("project_file_deleted",
		slog.String("project_id", projectID),
		slog.String("file_id", fileID),
	)
	return nil
}

// sanitizeFileName strips any path component and normalises spaces so the
// name is safe to embed in an object store key.
func sanitizeFileName(name string) string {
	return strings.ReplaceAll(path.Base(name), " ", "-")
}
