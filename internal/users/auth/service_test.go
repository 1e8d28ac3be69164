package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champastudio/champa/internal/platform/apperr"
	"github.com/champastudio/champa/internal/platform/sec"
	"github.com/champastudio/champa/internal/users/auth"
	"github.com/champastudio/champa/pkg/i18n"
)

// # Test Doubles

// fakeUserRepository is an in-memory UserRepository that counts calls so tests
// can prove a failing form never reaches storage.
type fakeUserRepository struct {
	users       map[string]*auth.User
	calls       int
	createCalls int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*auth.User{}}
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	f.calls++
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	f.calls++
	if user, ok := f.users[email]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	f.calls++
	f.createCalls++
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepository) Update(_ context.Context, user *auth.User) error {
	f.calls++
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	f.calls++
	for _, user := range f.users {
		if user.ID == userID {
			user.PasswordHash = newHash
		}
	}
	return nil
}

func (f *fakeUserRepository) SoftDelete(_ context.Context, _ string) error {
	f.calls++
	return nil
}

func (f *fakeUserRepository) MarkVerified(_ context.Context, userID string) error {
	f.calls++
	for _, user := range f.users {
		if user.ID == userID {
			user.IsVerified = true
		}
	}
	return nil
}

// fakeSessionRepository tracks created and revoked sessions.
type fakeSessionRepository struct {
	sessions    []*auth.Session
	calls       int
	revokedIDs  []string
	revokedAll  []string
	createCalls int
}

func (f *fakeSessionRepository) Create(_ context.Context, session *auth.Session) error {
	f.calls++
	f.createCalls++
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	f.calls++
	for _, session := range f.sessions {
		if session.TokenHash == tokenHash && !session.IsRevoked {
			return session, nil
		}
	}
	return nil, apperr.NotFound("Session")
}

func (f *fakeSessionRepository) Revoke(_ context.Context, sessionID string) error {
	f.calls++
	f.revokedIDs = append(f.revokedIDs, sessionID)
	for _, session := range f.sessions {
		if session.ID == sessionID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (f *fakeSessionRepository) RevokeAll(_ context.Context, userID string) error {
	f.calls++
	f.revokedAll = append(f.revokedAll, userID)
	for _, session := range f.sessions {
		if session.UserID == userID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (f *fakeSessionRepository) RevokeOthers(_ context.Context, userID, currentSessionID string) error {
	f.calls++
	for _, session := range f.sessions {
		if session.UserID == userID && session.ID != currentSessionID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (f *fakeSessionRepository) DeleteExpired(_ context.Context) error {
	f.calls++
	return nil
}

// fakeTokenStore is an in-memory volatile token store shared by the reset and
// verification repositories.
type fakeTokenStore struct {
	tokens map[string]string
	calls  int
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]string{}}
}

func (f *fakeTokenStore) Set(_ context.Context, token, userID string, _ time.Duration) error {
	f.calls++
	f.tokens[token] = userID
	return nil
}

func (f *fakeTokenStore) Get(_ context.Context, token string) (string, error) {
	f.calls++
	if userID, ok := f.tokens[token]; ok {
		return userID, nil
	}
	return "", apperr.NotFound("Token")
}

func (f *fakeTokenStore) Delete(_ context.Context, token string) error {
	f.calls++
	delete(f.tokens, token)
	return nil
}

// fakeTokenProvider issues predictable access tokens.
type fakeTokenProvider struct {
	calls int
}

func (f *fakeTokenProvider) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	f.calls++
	return "jwt-for-" + userID, nil
}

type serviceFixture struct {
	service  *auth.Service
	users    *fakeUserRepository
	sessions *fakeSessionRepository
	resets   *fakeTokenStore
	verifies *fakeTokenStore
	tokens   *fakeTokenProvider
}

func newServiceFixture() *serviceFixture {
	fixture := &serviceFixture{
		users:    newFakeUserRepository(),
		sessions: &fakeSessionRepository{},
		resets:   newFakeTokenStore(),
		verifies: newFakeTokenStore(),
		tokens:   &fakeTokenProvider{},
	}
	fixture.service = auth.NewService(
		fixture.users, fixture.sessions, fixture.resets, fixture.verifies, fixture.tokens,
	)
	return fixture
}

func (f *serviceFixture) collaboratorCalls() int {
	return f.users.calls + f.sessions.calls + f.resets.calls + f.verifies.calls + f.tokens.calls
}

func (f *serviceFixture) seedUser(t *testing.T, email, password string) *auth.User {
	t.Helper()
	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	user := &auth.User{
		ID:            "user-" + email,
		Email:         email,
		PasswordHash:  hash,
		DisplayName:   "Seeded",
		Role:          sec.RoleClient,
		PreferredLang: i18n.LangEnglish,
	}
	f.users.users[email] = user
	return user
}

// # Registration

/*
TestService_Register_MismatchBlocksCollaborators proves a password confirmation
mismatch fails locally, without a single repository or token provider call.
*/
func TestService_Register_MismatchBlocksCollaborators(t *testing.T) {
	fixture := newServiceFixture()

	_, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Email:           "noy@champa.la",
		Password:        "correct horse",
		ConfirmPassword: "wrong horse",
		DisplayName:     "Noy",
	})

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Zero(t, fixture.collaboratorCalls())
}

/*
TestService_Register_AllFailuresReported collects every invalid field in one
response instead of stopping at the first.
*/
func TestService_Register_AllFailuresReported(t *testing.T) {
	fixture := newServiceFixture()

	_, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Email:           "not-an-email",
		Password:        "short",
		ConfirmPassword: "different",
		DisplayName:     "",
	})

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)

	fields := make([]string, 0, len(appError.Details))
	for _, detail := range appError.Details {
		fields = append(fields, detail.Field)
	}
	assert.Contains(t, fields, auth.FieldEmail)
	assert.Contains(t, fields, auth.FieldPassword)
	assert.Contains(t, fields, auth.FieldConfirmPassword)
	assert.Contains(t, fields, auth.FieldDisplayName)
	assert.Zero(t, fixture.collaboratorCalls())
}

/*
TestService_Register_NewAccountsAreClients verifies that self-registration can
never mint an administrator, hashes the password, and defaults the language
when the requested one is not supported.
*/
func TestService_Register_NewAccountsAreClients(t *testing.T) {
	fixture := newServiceFixture()

	user, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Email:           "noy@champa.la",
		Password:        "open sesame 9",
		ConfirmPassword: "open sesame 9",
		DisplayName:     "Noy Phommachanh",
		Company:         "Mekong Coffee",
		PreferredLang:   i18n.Lang("de"),
	})
	require.NoError(t, err)

	assert.Equal(t, sec.RoleClient, user.Role)
	assert.Equal(t, i18n.DefaultLang, user.PreferredLang)
	assert.NotEqual(t, "open sesame 9", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("open sesame 9", user.PasswordHash))
	assert.False(t, user.IsVerified)
	assert.Equal(t, 1, fixture.users.createCalls)

	// A verification token was parked in the volatile store.
	assert.Len(t, fixture.verifies.tokens, 1)
}

/*
TestService_Register_DuplicateEmail returns a conflict without creating a row.
*/
func TestService_Register_DuplicateEmail(t *testing.T) {
	fixture := newServiceFixture()
	fixture.seedUser(t, "noy@champa.la", "existing pass")

	_, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Email:           "noy@champa.la",
		Password:        "open sesame 9",
		ConfirmPassword: "open sesame 9",
		DisplayName:     "Noy",
	})

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
	assert.Zero(t, fixture.users.createCalls)
}

// # Login and Sessions

/*
TestService_Login_WrongPassword returns the same generic message as an unknown
email and creates no session.
*/
func TestService_Login_WrongPassword(t *testing.T) {
	fixture := newServiceFixture()
	fixture.seedUser(t, "noy@champa.la", "right password")

	_, wrongPassword := fixture.service.Login(context.Background(), auth.LoginInput{
		Email:    "noy@champa.la",
		Password: "wrong password",
	})
	_, unknownEmail := fixture.service.Login(context.Background(), auth.LoginInput{
		Email:    "ghost@champa.la",
		Password: "whatever",
	})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	assert.Zero(t, fixture.sessions.createCalls)
}

/*
TestService_Login_IssuesRotatableSession stores only a hash of the refresh
token and hands the plain value back to the transport.
*/
func TestService_Login_IssuesRotatableSession(t *testing.T) {
	fixture := newServiceFixture()
	user := fixture.seedUser(t, "noy@champa.la", "right password")

	session, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Email:     "noy@champa.la",
		Password:  "right password",
		UserAgent: "test-agent",
		IPAddress: "203.0.113.7",
	})
	require.NoError(t, err)

	assert.Equal(t, "jwt-for-"+user.ID, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	require.Len(t, fixture.sessions.sessions, 1)

	stored := fixture.sessions.sessions[0]
	assert.NotEqual(t, session.RefreshToken, stored.TokenHash)
	assert.Equal(t, sec.HashToken(session.RefreshToken), stored.TokenHash)
	assert.Equal(t, "203.0.113.7", stored.IPAddress)
}

/*
TestService_RefreshSession_RotatesToken revokes the presented session and
issues a brand new token pair; replaying the old token then fails.
*/
func TestService_RefreshSession_RotatesToken(t *testing.T) {
	fixture := newServiceFixture()
	fixture.seedUser(t, "noy@champa.la", "right password")

	login, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Email:    "noy@champa.la",
		Password: "right password",
	})
	require.NoError(t, err)

	refreshed, err := fixture.service.RefreshSession(context.Background(), login.RefreshToken, "agent", "203.0.113.7")
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// Replay of the rotated-out token is rejected.
	_, err = fixture.service.RefreshSession(context.Background(), login.RefreshToken, "agent", "203.0.113.7")
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)
}

/*
TestService_Logout_Idempotent treats an unknown token as an already completed
logout.
*/
func TestService_Logout_Idempotent(t *testing.T) {
	fixture := newServiceFixture()

	err := fixture.service.Logout(context.Background(), "never-issued")
	assert.NoError(t, err)
}

// # Password Recovery

/*
TestService_RequestPasswordReset_UnknownEmail stays silent for addresses that
have no account, so the endpoint cannot be used to enumerate users.
*/
func TestService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	fixture := newServiceFixture()

	token, err := fixture.service.RequestPasswordReset(context.Background(), "ghost@champa.la")
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, fixture.resets.tokens)
}

/*
TestService_ResetPassword_RevokesAllSessions updates the hash, consumes the
token, and kills every active session for the account.
*/
func TestService_ResetPassword_RevokesAllSessions(t *testing.T) {
	fixture := newServiceFixture()
	user := fixture.seedUser(t, "noy@champa.la", "old password")

	_, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Email:    "noy@champa.la",
		Password: "old password",
	})
	require.NoError(t, err)

	token, err := fixture.service.RequestPasswordReset(context.Background(), "noy@champa.la")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, fixture.service.ResetPassword(context.Background(), token, "new password 1"))

	assert.True(t, sec.CheckPasswordHash("new password 1", fixture.users.users["noy@champa.la"].PasswordHash))
	assert.Contains(t, fixture.sessions.revokedAll, user.ID)
	assert.Empty(t, fixture.resets.tokens)

	// The token is single use.
	err = fixture.service.ResetPassword(context.Background(), token, "another password")
	require.Error(t, err)
}

/*
TestService_VerifyEmail flips the verification flag and consumes the token.
*/
func TestService_VerifyEmail(t *testing.T) {
	fixture := newServiceFixture()
	user := fixture.seedUser(t, "noy@champa.la", "password one")
	fixture.verifies.tokens["verify-me"] = user.ID

	require.NoError(t, fixture.service.VerifyEmail(context.Background(), "verify-me"))

	assert.True(t, fixture.users.users["noy@champa.la"].IsVerified)
	assert.Empty(t, fixture.verifies.tokens)
}
