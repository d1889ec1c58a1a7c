package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Ravi-kumar178/Project-Management/internal/domain/apperror"
)

func TestForgotPassword_SendsResetMail(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	user := seedUser(t, repo, "alice@example.com", "alice", "s3cretpass")
	uc := NewForgotPassword(repo, mailer, "http://localhost:8080", 1200)

	require.NoError(t, uc.Execute(context.Background(), "alice@example.com"))

	stored, _ := repo.GetByID(context.Background(), user.ID)
	require.NotEmpty(t, stored.ForgotPasswordToken)
	require.NotNil(t, stored.ForgotPasswordExpiry)
	require.Len(t, mailer.sent, 1)
	require.Contains(t, mailer.sent[0].Text, "/api/v1/auth/reset-password/")
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	uc := NewForgotPassword(newFakeUserRepo(), &fakeMailer{}, "http://localhost:8080", 1200)
	err := uc.Execute(context.Background(), "ghost@example.com")
	require.Error(t, err)
	require.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestResetPassword_ConsumesTokenAndInstallsPassword(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	user := seedUser(t, repo, "alice@example.com", "alice", "oldpass123")
	forgot := NewForgotPassword(repo, mailer, "http://localhost:8080", 1200)
	reset := NewResetPassword(repo, fakeHasher{})

	require.NoError(t, forgot.Execute(context.Background(), "alice@example.com"))
	raw := tokenFromMail(t, mailer.sent[0].Text)

	require.NoError(t, reset.Execute(context.Background(), raw, "newpass456"))

	stored, _ := repo.GetByID(context.Background(), user.ID)
	require.Equal(t, "hashed:newpass456", stored.Password)
	require.Empty(t, stored.ForgotPasswordToken)

	// Single use.
	err := reset.Execute(context.Background(), raw, "another789")
	require.Error(t, err)
	require.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "alice@example.com", "alice", "oldpass123")
	reset := NewResetPassword(repo, fakeHasher{})

	raw, hash, _, err := newTemporaryToken(time.Minute)
	require.NoError(t, err)
	expired := time.Now().Add(-time.Minute)
	require.NoError(t, repo.SetForgotPasswordToken(context.Background(), user.ID, hash, expired))

	err = reset.Execute(context.Background(), raw, "newpass456")
	require.Error(t, err)
	require.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
}

func TestChangePassword(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "alice@example.com", "alice", "oldpass123")
	uc := NewChangePassword(repo, fakeHasher{})

	err := uc.Execute(context.Background(), ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "wrongpass",
		NewPassword: "newpass456",
	})
	require.Error(t, err)
	require.True(t, apperror.IsKind(err, apperror.KindUnauthorized))

	err = uc.Execute(context.Background(), ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "oldpass123",
		NewPassword: "newpass456",
	})
	require.NoError(t, err)

	stored, _ := repo.GetByID(context.Background(), user.ID)
	require.Equal(t, "hashed:newpass456", stored.Password)
}

func TestSendEmailVerification_AlreadyVerified(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "alice@example.com", "alice", "s3cretpass")
	user.IsEmailVerified = true
	uc := NewSendEmailVerification(repo, &fakeMailer{}, "http://localhost:8080", 1200)

	err := uc.Execute(context.Background(), user.ID)
	require.Error(t, err)
	require.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestSendEmailVerification_OverwritesPreviousToken(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &fakeMailer{}
	user := seedUser(t, repo, "alice@example.com", "alice", "s3cretpass")
	uc := NewSendEmailVerification(repo, mailer, "http://localhost:8080", 1200)
	verify := NewVerifyEmail(repo)

	require.NoError(t, uc.Execute(context.Background(), user.ID))
	firstRaw := tokenFromMail(t, mailer.sent[0].Text)
	require.NoError(t, uc.Execute(context.Background(), user.ID))
	secondRaw := tokenFromMail(t, mailer.sent[1].Text)
	require.NotEqual(t, firstRaw, secondRaw)

	// The overwritten link is dead, the new one works.
	_, err := verify.Execute(context.Background(), firstRaw)
	require.Error(t, err)
	_, err = verify.Execute(context.Background(), secondRaw)
	require.NoError(t, err)
}

func TestNewTemporaryToken(t *testing.T) {
	raw, hash, expiry, err := newTemporaryToken(20 * time.Minute)
	require.NoError(t, err)
	require.Len(t, raw, 40) // 20 bytes hex encoded
	require.Equal(t, sha256Hash(raw), hash)
	require.NotEqual(t, raw, hash)
	require.True(t, expiry.After(time.Now()))
}
