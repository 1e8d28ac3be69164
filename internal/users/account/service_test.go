package account_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champastudio/champa/internal/platform/apperr"
	"github.com/champastudio/champa/internal/users/account"
	"github.com/champastudio/champa/internal/users/auth"
	"github.com/champastudio/champa/pkg/i18n"
	"github.com/champastudio/champa/pkg/pointer"
)

// fakeAccountRepository is an in-memory AccountRepository.
type fakeAccountRepository struct {
	user        *auth.User
	updated     *auth.User
	prefs       *account.Preferences
	softDeleted []string
}

func (f *fakeAccountRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	if f.user != nil && f.user.ID == id {
		copied := *f.user
		return &copied, nil
	}
	return nil, apperr.NotFound("Account")
}

func (f *fakeAccountRepository) Update(_ context.Context, user *auth.User) error {
	f.updated = user
	return nil
}

func (f *fakeAccountRepository) UpdatePreferences(_ context.Context, prefs *account.Preferences) error {
	f.prefs = prefs
	return nil
}

func (f *fakeAccountRepository) SoftDelete(_ context.Context, id string) error {
	f.softDeleted = append(f.softDeleted, id)
	return nil
}

// fakeSessionRepository records revocations.
type fakeSessionRepository struct {
	revokedAll []string
}

func (f *fakeSessionRepository) FindActiveByUserID(_ context.Context, _ string) ([]account.SessionInfo, error) {
	return nil, nil
}

func (f *fakeSessionRepository) Revoke(_ context.Context, _, _ string) error { return nil }

func (f *fakeSessionRepository) RevokeOthers(_ context.Context, _, _ string) error { return nil }

func (f *fakeSessionRepository) RevokeAll(_ context.Context, userID string) error {
	f.revokedAll = append(f.revokedAll, userID)
	return nil
}

func fixtureUser() *auth.User {
	return &auth.User{
		ID:            "u1",
		Email:         "noy@champa.la",
		DisplayName:   "Noy",
		Company:       "Mekong Coffee",
		Phone:         "+856 20 555 000",
		PreferredLang: i18n.LangLao,
		Theme:         account.ThemeDark,
	}
}

/*
TestService_UpdateProfile_PartialDelta changes only the provided fields and
leaves the rest of the profile untouched.
*/
func TestService_UpdateProfile_PartialDelta(t *testing.T) {
	repo := &fakeAccountRepository{user: fixtureUser()}
	service := account.NewService(repo, &fakeSessionRepository{}, slog.Default())

	updated, err := service.UpdateProfile(context.Background(), "u1", account.UpdateProfileInput{
		DisplayName: pointer.To("Noy Phommachanh"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Noy Phommachanh", updated.DisplayName)
	assert.Equal(t, "Mekong Coffee", updated.Company)
	assert.Equal(t, "+856 20 555 000", updated.Phone)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "Noy Phommachanh", repo.updated.DisplayName)
}

/*
TestService_DeleteAccount_RevokesSessions forces a global sign-out alongside
the soft delete.
*/
func TestService_DeleteAccount_RevokesSessions(t *testing.T) {
	repo := &fakeAccountRepository{user: fixtureUser()}
	sessions := &fakeSessionRepository{}
	service := account.NewService(repo, sessions, slog.Default())

	require.NoError(t, service.DeleteAccount(context.Background(), "u1"))

	assert.Contains(t, repo.softDeleted, "u1")
	assert.Contains(t, sessions.revokedAll, "u1")
}

/*
TestService_GetPreferences_Projection reads language and theme off the account
row and degrades missing values to the defaults.
*/
func TestService_GetPreferences_Projection(t *testing.T) {
	repo := &fakeAccountRepository{user: fixtureUser()}
	service := account.NewService(repo, &fakeSessionRepository{}, slog.Default())

	prefs, err := service.GetPreferences(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, i18n.LangLao, prefs.Language)
	assert.Equal(t, account.ThemeDark, prefs.Theme)

	// A legacy row with blanks falls back to English and light.
	repo.user.PreferredLang = ""
	repo.user.Theme = ""
	prefs, err = service.GetPreferences(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, i18n.DefaultLang, prefs.Language)
	assert.Equal(t, account.ThemeLight, prefs.Theme)
}
