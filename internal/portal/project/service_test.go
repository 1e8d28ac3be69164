package project_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champastudio/champa/internal/platform/apperr"
	"github.com/champastudio/champa/internal/platform/constants"
	"github.com/champastudio/champa/internal/platform/sec"
	"github.com/champastudio/champa/internal/portal/project"
)

// fakeRepository is an in-memory Repository with call counters.
type fakeRepository struct {
	projects     []*project.Project
	messages     []*project.Message
	files        []*project.File
	messageCalls int
	fileCalls    int
}

func (f *fakeRepository) ListByClient(_ context.Context, clientID string) ([]*project.Project, error) {
	var owned []*project.Project
	for _, proj := range f.projects {
		if proj.ClientID == clientID {
			owned = append(owned, proj)
		}
	}
	return owned, nil
}

func (f *fakeRepository) ListAll(_ context.Context) ([]*project.Project, error) {
	return f.projects, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*project.Project, error) {
	for _, proj := range f.projects {
		if proj.ID == id {
			return proj, nil
		}
	}
	return nil, apperr.NotFound("Project")
}

func (f *fakeRepository) Create(_ context.Context, proj *project.Project) error {
	f.projects = append(f.projects, proj)
	return nil
}

func (f *fakeRepository) Update(_ context.Context, _ *project.Project) error { return nil }
func (f *fakeRepository) Delete(_ context.Context, _ string) error           { return nil }

func (f *fakeRepository) ListMessages(_ context.Context, projectID string) ([]*project.Message, error) {
	var thread []*project.Message
	for _, message := range f.messages {
		if message.ProjectID == projectID {
			thread = append(thread, message)
		}
	}
	return thread, nil
}

func (f *fakeRepository) CreateMessage(_ context.Context, message *project.Message) error {
	f.messageCalls++
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeRepository) ListFiles(_ context.Context, projectID string) ([]*project.File, error) {
	var matched []*project.File
	for _, file := range f.files {
		if file.ProjectID == projectID {
			matched = append(matched, file)
		}
	}
	return matched, nil
}

func (f *fakeRepository) GetFile(_ context.Context, projectID, fileID string) (*project.File, error) {
	for _, file := range f.files {
		if file.ProjectID == projectID && file.ID == fileID {
			return file, nil
		}
	}
	return nil, apperr.NotFound("Project file")
}

func (f *fakeRepository) CreateFile(_ context.Context, file *project.File) error {
	f.fileCalls++
	f.files = append(f.files, file)
	return nil
}

func (f *fakeRepository) DeleteFile(_ context.Context, projectID, fileID string) error {
	for index, file := range f.files {
		if file.ProjectID == projectID && file.ID == fileID {
			f.files = append(f.files[:index], f.files[index+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Project file")
}

// fakeObjectStore counts uploads and removals.
type fakeObjectStore struct {
	uploadCalls int
	removed     []string
}

func (f *fakeObjectStore) Upload(_ context.Context, _ string, _ io.Reader, _ string) error {
	f.uploadCalls++
	return nil
}

func (f *fakeObjectStore) Remove(_ context.Context, key string) error {
	f.removed = append(f.removed, key)
	return nil
}

func (f *fakeObjectStore) PublicURL(key string) string {
	return "https://files.champa.studio/" + key
}

func adminClaims() *sec.AuthClaims {
	return &sec.AuthClaims{UserID: "admin-1", Role: string(sec.RoleAdmin)}
}

func clientClaims(userID string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID, Role: string(sec.RoleClient)}
}

func seededRepo() *fakeRepository {
	return &fakeRepository{projects: []*project.Project{
		{ID: "p1", ClientID: "c1", Title: "Brand Refresh", Status: project.StatusInProgress},
		{ID: "p2", ClientID: "c2", Title: "Website", Status: project.StatusPending},
	}}
}

/*
TestService_Scoping hides foreign projects from clients while admins see the
whole book of work.
*/
func TestService_Scoping(t *testing.T) {
	repo := seededRepo()
	service := project.NewService(repo, &fakeObjectStore{}, slog.Default())

	owned, err := service.ListProjects(context.Background(), clientClaims("c1"))
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "p1", owned[0].ID)

	everything, err := service.ListProjects(context.Background(), adminClaims())
	require.NoError(t, err)
	assert.Len(t, everything, 2)

	// A client reaching for someone else's project gets NotFound, not
	// Forbidden, so the project's existence does not leak.
	_, err = service.GetProject(context.Background(), clientClaims("c1"), "p2")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_PostMessage_ValidationBlocksStore proves an empty message body
performs zero repository writes.
*/
func TestService_PostMessage_ValidationBlocksStore(t *testing.T) {
	repo := seededRepo()
	service := project.NewService(repo, &fakeObjectStore{}, slog.Default())

	_, err := service.PostMessage(context.Background(), clientClaims("c1"), "p1", "   ")
	require.Error(t, err)
	assert.Zero(t, repo.messageCalls)

	message, err := service.PostMessage(context.Background(), clientClaims("c1"), "p1", "Looks great!")
	require.NoError(t, err)
	assert.Equal(t, "c1", message.AuthorID)
	assert.Equal(t, 1, repo.messageCalls)
}

/*
TestService_UploadFile_SizeCeiling rejects oversized uploads before any
object store or repository call.
*/
func TestService_UploadFile_SizeCeiling(t *testing.T) {
	repo := seededRepo()
	store := &fakeObjectStore{}
	service := project.NewService(repo, store, slog.Default())

	_, err := service.UploadFile(context.Background(), clientClaims("c1"), "p1", project.UploadFileInput{
		FileName:    "logo-pack.zip",
		ContentType: "application/zip",
		SizeBytes:   constants.MaxUploadBytes + 1,
		Body:        strings.NewReader("x"),
	})

	require.Error(t, err)
	assert.Zero(t, store.uploadCalls)
	assert.Zero(t, repo.fileCalls)
}

/*
TestService_UploadFile_StoresAndResolvesURL uploads within the ceiling and
returns a view with a public URL.
*/
func TestService_UploadFile_StoresAndResolvesURL(t *testing.T) {
	repo := seededRepo()
	store := &fakeObjectStore{}
	service := project.NewService(repo, store, slog.Default())

	view, err := service.UploadFile(context.Background(), clientClaims("c1"), "p1", project.UploadFileInput{
		FileName:    "final logo.svg",
		ContentType: "image/svg+xml",
		SizeBytes:   1024,
		Body:        strings.NewReader("<svg/>"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, store.uploadCalls)
	assert.Equal(t, 1, repo.fileCalls)
	assert.Equal(t, "final-logo.svg", view.FileName)
	assert.Contains(t, view.URL, "https://files.champa.studio/projects/p1/")
}

/*
TestService_DeleteFile_UploaderOnly lets a client delete their own upload but
not files placed by the studio.
*/
func TestService_DeleteFile_UploaderOnly(t *testing.T) {
	repo := seededRepo()
	repo.files = []*project.File{
		{ID: "f1", ProjectID: "p1", UploaderID: "c1", ObjectKey: "projects/p1/f1-brief.pdf"},
		{ID: "f2", ProjectID: "p1", UploaderID: "admin-1", ObjectKey: "projects/p1/f2-draft.pdf"},
	}
	store := &fakeObjectStore{}
	service := project.NewService(repo, store, slog.Default())

	err := service.DeleteFile(context.Background(), clientClaims("c1"), "p1", "f2")
	require.Error(t, err)

	require.NoError(t, service.DeleteFile(context.Background(), clientClaims("c1"), "p1", "f1"))
	assert.Contains(t, store.removed, "projects/p1/f1-brief.pdf")
}
