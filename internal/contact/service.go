// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

package contact

import (
	"context"
	"log/slog"

	"github.com/champastudio/champa/internal/platform/validate"
	"github.com/champastudio/champa/pkg/i18n"
	"github.com/champastudio/champa/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// SubmitInput carries one contact form submission.
type SubmitInput struct {
	Name    string
	Email   string
	Subject string
	Message string
	Lang    i18n.Lang
}

/*
Submit validates and stores a contact form submission.

Description: Validation runs completely before the store is touched. The
visitor's browsing language is kept on the row so staff can reply in it.

Parameters:
  - context: context.Context
  - input: SubmitInput

Returns:
  - *Message: Stored message
  - error: Validation or storage failures
*/
func (service *Service) Submit(context context.Context, input SubmitInput) (*Message, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 100).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		MaxLen(FieldSubject, input.Subject, 200).
		Required(FieldMessage, input.Message).
		MaxLen(FieldMessage, input.Message, 4000)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	lang := input.Lang
	if !lang.IsSupported() {
		lang = i18n.DefaultLang
	}

	message := &Message{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
		Lang:    lang,
		Status:  StatusNew,
	}

	if err := service.repo.Create(context, message); err != nil {
		return nil, err
	}

	service.logger.Info("contact_message_received",
		slog.String("message_id", message.ID),
		slog.String("lang", string(message.Lang)),
	)

	return message, nil
}

// ListMessages returns the inbox for the back office.
func (service *Service) ListMessages(context context.Context) ([]*Message, error) {
	return service.repo.List(context)
}

// GetMessage resolves a single message for the back office.
func (service *Service) GetMessage(context context.Context, id string) (*Message, error) {
	return service.repo.GetByID(context, id)
}

// UpdateStatus moves a message through the inbox workflow.
func (service *Service) UpdateStatus(context context.Context, id, status string) (*Message, error) {
	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, status, Statuses()...)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	updated, err := service.repo.UpdateStatus(context, id, status)
	if err != nil {
		return nil, err
	}

	service.logger.Info("contact_message_status_changed",
		slog.String("message_id", id),
		slog.String("status", status),
	)
	return updated, nil
}
