package contact_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champastudio/champa/internal/contact"
	"github.com/champastudio/champa/internal/platform/apperr"
	"github.com/champastudio/champa/pkg/i18n"
)

type fakeRepository struct {
	messages    []*contact.Message
	createCalls int
}

func (f *fakeRepository) List(_ context.Context) ([]*contact.Message, error) {
	return f.messages, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*contact.Message, error) {
	for _, message := range f.messages {
		if message.ID == id {
			return message, nil
		}
	}
	return nil, apperr.NotFound("Contact message")
}

func (f *fakeRepository) Create(_ context.Context, message *contact.Message) error {
	f.createCalls++
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeRepository) UpdateStatus(_ context.Context, id, status string) (*contact.Message, error) {
	for _, message := range f.messages {
		if message.ID == id {
			message.Status = status
			return message, nil
		}
	}
	return nil, apperr.NotFound("Contact message")
}

func validInput() contact.SubmitInput {
	return contact.SubmitInput{
		Name:    "Khamla Vongsa",
		Email:   "khamla@example.la",
		Subject: "Brand refresh",
		Message: "We would like a quote for a full rebrand.",
		Lang:    i18n.LangLao,
	}
}

func TestService_Submit_ValidationBlocksStore(t *testing.T) {
	repo := &fakeRepository{}
	service := contact.NewService(repo, slog.Default())

	input := validInput()
	input.Email = "not-an-email"
	input.Message = "   "

	_, err := service.Submit(context.Background(), input)

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Len(t, appError.Details, 2)
	assert.Zero(t, repo.createCalls)
}

func TestService_Submit_KeepsVisitorLanguage(t *testing.T) {
	repo := &fakeRepository{}
	service := contact.NewService(repo, slog.Default())

	message, err := service.Submit(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, i18n.LangLao, message.Lang)
	assert.Equal(t, contact.StatusNew, message.Status)
	assert.NotEmpty(t, message.ID)
	assert.Equal(t, 1, repo.createCalls)
}

func TestService_Submit_UnsupportedLanguageFallsBack(t *testing.T) {
	repo := &fakeRepository{}
	service := contact.NewService(repo, slog.Default())

	input := validInput()
	input.Lang = i18n.Lang("de")

	message, err := service.Submit(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, i18n.DefaultLang, message.Lang)
}

func TestService_UpdateStatus_RejectsUnknown(t *testing.T) {
	repo := &fakeRepository{messages: []*contact.Message{
		{ID: "m1", Status: contact.StatusNew},
	}}
	service := contact.NewService(repo, slog.Default())

	_, err := service.UpdateStatus(context.Background(), "m1", "deleted")
	require.Error(t, err)

	updated, err := service.UpdateStatus(context.Background(), "m1", contact.StatusRead)
	require.NoError(t, err)
	assert.Equal(t, contact.StatusRead, updated.Status)
}
