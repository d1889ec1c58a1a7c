package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ravi-kumar178/Project-Management/internal/domain"
	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

func TestRegister_CreatesUnverifiedUserAndSendsMail(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	uc := NewRegister(repo, fakeHasher{}, mailer, "http://localhost:8080", 1200)

	result, err := uc.Execute(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
		Fullname: "Alice A",
	})
	require.NoError(t, err)
	require.False(t, result.User.IsEmailVerified)
	require.Equal(t, "alice", result.User.Username)
	require.Equal(t, domain.DefaultAvatarURL, result.User.Avatar.URL)

	stored, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, "hashed:s3cretpass", stored.Password)
	require.NotEmpty(t, stored.EmailVerificationToken)
	require.NotNil(t, stored.EmailVerificationExpiry)

	require.Len(t, mailer.sent, 1)
	require.Equal(t, "alice@example.com", mailer.sent[0].To)
	require.Contains(t, mailer.sent[0].Text, "/api/v1/auth/verify-email/")
	// The raw token travels in the link; only its digest is stored.
	require.NotContains(t, mailer.sent[0].Text, stored.EmailVerificationToken)
}

func TestRegister_DuplicateEmailOrUsername(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegister(repo, fakeHasher{}, &fakeMailer{}, "http://localhost:8080", 1200)

	_, err := uc.Execute(context.Background(), RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "s3cretpass",
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), RegisterInput{
		Username: "alice2", Email: "alice@example.com", Password: "s3cretpass",
	})
	require.Error(t, err)
	require.True(t, apperror.IsKind(err, apperror.KindConflict))

	_, err = uc.Execute(context.Background(), RegisterInput{
		Username: "alice", Email: "other@example.com", Password: "s3cretpass",
	})
	require.Error(t, err)
	require.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestVerifyEmail_ConsumesTokenOnce(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	register := NewRegister(repo, fakeHasher{}, mailer, "http://localhost:8080", 1200)
	verify := NewVerifyEmail(repo)

	_, err := register.Execute(context.Background(), RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "s3cretpass",
	})
	require.NoError(t, err)

	raw := tokenFromMail(t, mailer.sent[0].Text)
	result, err := verify.Execute(context.Background(), raw)
	require.NoError(t, err)
	require.True(t, result.IsEmailVerified)

	stored, _ := repo.GetByEmail(context.Background(), "bob@example.com")
	require.True(t, stored.IsEmailVerified)
	require.Empty(t, stored.EmailVerificationToken)

	// Second use of the same token fails.
	_, err = verify.Execute(context.Background(), raw)
	require.Error(t, err)
	require.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
}

func TestVerifyEmail_InvalidToken(t *testing.T) {
	verify := NewVerifyEmail(newFakeUserRepo())
	_, err := verify.Execute(context.Background(), "deadbeef")
	require.Error(t, err)
	require.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
}

// tokenFromMail extracts the raw token from the last path segment of the
// link embedded in the mail body.
func tokenFromMail(t *testing.T, body string) string {
	t.Helper()
	idx := strings.Index(body, "/api/v1/auth/")
	require.GreaterOrEqual(t, idx, 0)
	rest := body[idx:]
	end := strings.IndexAny(rest, " \n")
	if end >= 0 {
		rest = rest[:end]
	}
	parts := strings.Split(rest, "/")
	return parts[len(parts)-1]
}
