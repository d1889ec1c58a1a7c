package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       primitive.NewObjectID(),
		Email:    "alice@example.com",
		Username: "alice",
	}
}

func TestTokenIssuer_AccessTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("access-secret", "refresh-secret", 900, 604800)
	user := testUser()

	token, err := issuer.SignAccessToken(user)
	require.NoError(t, err)

	claims, err := issuer.VerifyAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, user.Email, claims.Email)
	require.Equal(t, user.Username, claims.Username)
}

func TestTokenIssuer_RefreshTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("access-secret", "refresh-secret", 900, 604800)
	userID := primitive.NewObjectID()

	token, err := issuer.SignRefreshToken(userID)
	require.NoError(t, err)

	got, err := issuer.VerifyRefreshToken(token)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestTokenIssuer_SecretsAreNotInterchangeable(t *testing.T) {
	issuer := NewTokenIssuer("access-secret", "refresh-secret", 900, 604800)
	user := testUser()

	access, err := issuer.SignAccessToken(user)
	require.NoError(t, err)
	refresh, err := issuer.SignRefreshToken(user.ID)
	require.NoError(t, err)

	_, err = issuer.VerifyRefreshToken(access)
	require.ErrorIs(t, err, ErrTokenInvalid)
	_, err = issuer.VerifyAccessToken(refresh)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("access-secret", "refresh-secret", 900, 604800)
	other := NewTokenIssuer("different-secret", "another-secret", 900, 604800)

	token, err := issuer.SignAccessToken(testUser())
	require.NoError(t, err)

	_, err = other.VerifyAccessToken(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenIssuer_ExpiredToken(t *testing.T) {
	issuer := &TokenIssuer{
		accessSecret:  []byte("access-secret"),
		refreshSecret: []byte("refresh-secret"),
		accessExpiry:  -time.Minute,
		refreshExpiry: -time.Minute,
	}

	token, err := issuer.SignAccessToken(testUser())
	require.NoError(t, err)

	_, err = issuer.VerifyAccessToken(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenIssuer_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("access-secret", "refresh-secret", 900, 604800)

	_, err := issuer.VerifyAccessToken("not.a.jwt")
	require.ErrorIs(t, err, ErrTokenInvalid)
	_, err = issuer.VerifyRefreshToken("")
	require.ErrorIs(t, err, ErrTokenInvalid)
}
