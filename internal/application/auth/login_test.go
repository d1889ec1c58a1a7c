package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

func seedUser(t *testing.T, repo *fakeUserRepo, email, username, password string) *domain.User {
	t.Helper()
	user := &domain.User{
		Username: username,
		Email:    email,
		Password: "hashed:" + password,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	issuer := newFakeIssuer()
	user := seedUser(t, repo, "alice@example.com", "alice", "s3cretpass")
	uc := NewLogin(repo, fakeHasher{}, issuer)

	result, err := uc.Execute(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	require.Equal(t, user.ID, result.User.ID)
	require.NotEmpty(t, result.AccessToken)
	require.NotEmpty(t, result.RefreshToken)

	stored, _ := repo.GetByID(context.Background(), user.ID)
	require.Equal(t, result.RefreshToken, stored.RefreshToken)
}

func TestLogin_MintsDistinctRefreshTokens(t *testing.T) {
	repo := newFakeUserRepo()
	issuer := newFakeIssuer()
	seedUser(t, repo, "alice@example.com", "alice", "s3cretpass")
	uc := NewLogin(repo, fakeHasher{}, issuer)

	first, err := uc.Execute(context.Background(), LoginInput{Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), LoginInput{Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := NewLogin(newFakeUserRepo(), fakeHasher{}, newFakeIssuer())
	_, err := uc.Execute(context.Background(), LoginInput{Email: "ghost@example.com", Password: "whatever1"})
	require.Error(t, err)
	require.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "alice@example.com", "alice", "s3cretpass")
	uc := NewLogin(repo, fakeHasher{}, newFakeIssuer())

	_, err := uc.Execute(context.Background(), LoginInput{Email: "alice@example.com", Password: "wrongpass"})
	require.Error(t, err)
	require.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
}

func TestRefresh_RotatesTokenPair(t *testing.T) {
	repo := newFakeUserRepo()
	issuer := newFakeIssuer()
	seedUser(t, repo, "alice@example.com", "alice", "s3cretpass")
	login := NewLogin(repo, fakeHasher{}, issuer)
	refresh := NewRefresh(repo, issuer)

	loggedIn, err := login.Execute(context.Background(), LoginInput{Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)

	rotated, err := refresh.Execute(context.Background(), loggedIn.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, loggedIn.RefreshToken, rotated.RefreshToken)

	// The rotated-away token is stale and rejected.
	_, err = refresh.Execute(context.Background(), loggedIn.RefreshToken)
	require.Error(t, err)
	require.True(t, apperror.IsKind(err, apperror.KindUnauthorized))

	// The fresh one still works.
	_, err = refresh.Execute(context.Background(), rotated.RefreshToken)
	require.NoError(t, err)
}

func TestRefresh_RejectedAfterLogout(t *testing.T) {
	repo := newFakeUserRepo()
	issuer := newFakeIssuer()
	user := seedUser(t, repo, "alice@example.com", "alice", "s3cretpass")
	login := NewLogin(repo, fakeHasher{}, issuer)
	logout := NewLogout(repo)
	refresh := NewRefresh(repo, issuer)

	loggedIn, err := login.Execute(context.Background(), LoginInput{Email: "alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	require.NoError(t, logout.Execute(context.Background(), user.ID))

	_, err = refresh.Execute(context.Background(), loggedIn.RefreshToken)
	require.Error(t, err)
	require.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
}

func TestRefresh_EmptyToken(t *testing.T) {
	refresh := NewRefresh(newFakeUserRepo(), newFakeIssuer())
	_, err := refresh.Execute(context.Background(), "")
	require.Error(t, err)
	require.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
}

func TestLogout_Idempotent(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "alice@example.com", "alice", "s3cretpass")
	logout := NewLogout(repo)

	require.NoError(t, logout.Execute(context.Background(), user.ID))
	require.NoError(t, logout.Execute(context.Background(), user.ID))
}
