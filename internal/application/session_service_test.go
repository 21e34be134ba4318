package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/miftad456/task-management-sub001/pkg/apperr"
	"github.com/miftad456/task-management-sub001/pkg/helpers"
)

func newSessionFixture() (*SessionService, *memUserRepo) {
	users := newMemUserRepo()
	jwt := helpers.NewJWTManager("test-access-secret", "test-refresh-secret", 15*time.Minute, 7*24*time.Hour)
	return NewSessionService(users, jwt, nil, nil, nil, ""), users
}

func register(t *testing.T, svc *SessionService, name, username, email string) {
	t.Helper()
	_, err := svc.Register(context.Background(), RegisterInput{
		Name: name, Username: username, Email: email, Password: "secret1",
	})
	require.NoError(t, err)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _ := newSessionFixture()
	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "short",
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, users := newSessionFixture()
	register(t, svc, "Alice", "alice", "alice@example.com")

	stored, err := users.GetByUsername("alice")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", stored.Password)
	require.True(t, helpers.CompareHashAndPassword(stored.Password, "secret1"))
}

func TestRegisterConflictMessages(t *testing.T) {
	svc, _ := newSessionFixture()
	register(t, svc, "Alice", "alice", "alice@example.com")

	cases := []struct {
		name     string
		username string
		email    string
		want     string
	}{
		{"both taken", "alice", "alice@example.com", "username and email already exist"},
		{"username taken", "alice", "other@example.com", "username already exists"},
		{"email taken", "other", "alice@example.com", "email already exists"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), RegisterInput{
				Name: "Other", Username: tc.username, Email: tc.email, Password: "secret1",
			})
			require.Error(t, err)
			require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
			require.Equal(t, tc.want, apperr.MessageOf(err))
		})
	}
}

func TestLoginReturnsSameErrorForBadUserAndBadPassword(t *testing.T) {
	svc, _ := newSessionFixture()
	register(t, svc, "Alice", "alice", "alice@example.com")

	_, _, errUnknown := svc.Login(context.Background(), "nobody", "secret1")
	_, _, errWrongPwd := svc.Login(context.Background(), "alice", "wrongpwd")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPwd)
	require.Equal(t, apperr.KindAuth, apperr.KindOf(errUnknown))
	require.Equal(t, apperr.MessageOf(errUnknown), apperr.MessageOf(errWrongPwd))
}

func TestLoginSanitizesReturnedUser(t *testing.T) {
	svc, _ := newSessionFixture()
	register(t, svc, "Alice", "alice", "alice@example.com")

	u, pair, err := svc.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	require.Empty(t, u.Password)
	require.Empty(t, u.RefreshToken)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
}

func TestRefreshRotationInvalidatesOldToken(t *testing.T) {
	svc, _ := newSessionFixture()
	register(t, svc, "Alice", "alice", "alice@example.com")

	_, first, err := svc.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)

	// token signing has second granularity; make sure the rotated token differs
	time.Sleep(1100 * time.Millisecond)

	_, second, err := svc.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// the superseded token no longer matches the stored one
	_, _, err = svc.Refresh(context.Background(), first.RefreshToken)
	require.Error(t, err)
	require.Equal(t, apperr.KindAuth, apperr.KindOf(err))

	// the current token still works
	_, _, err = svc.Refresh(context.Background(), second.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc, _ := newSessionFixture()
	_, _, err := svc.Refresh(context.Background(), "not-a-jwt")
	require.Error(t, err)
	require.Equal(t, apperr.KindAuth, apperr.KindOf(err))
}

func TestLogoutRevokesRefreshTokenAndIsIdempotent(t *testing.T) {
	svc, users := newSessionFixture()
	register(t, svc, "Alice", "alice", "alice@example.com")

	u, pair, err := svc.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), u.ID))
	_, _, err = svc.Refresh(context.Background(), pair.RefreshToken)
	require.Error(t, err)

	// a second logout is a no-op, not an error
	require.NoError(t, svc.Logout(context.Background(), u.ID))

	stored, err := users.GetByID(u.ID)
	require.NoError(t, err)
	require.Empty(t, stored.RefreshToken)
}

func TestUpdateProfileRevalidatesPassword(t *testing.T) {
	svc, _ := newSessionFixture()
	register(t, svc, "Alice", "alice", "alice@example.com")
	u, _, err := svc.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)

	_, err = svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{Password: "abc"})
	require.Error(t, err)
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	updated, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{Name: "Alice B", Password: "newsecret"})
	require.NoError(t, err)
	require.Equal(t, "Alice B", updated.Name)

	_, _, err = svc.Login(context.Background(), "alice", "newsecret")
	require.NoError(t, err)
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc, _ := newSessionFixture()
	_, err := svc.GetProfile("00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
