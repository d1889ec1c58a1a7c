package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/domain"
)

// Verification error kinds. Both deny access; callers may branch on expiry
// to prompt re-authentication instead of rejecting outright.
var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// TokenIssuer implements ports.TokenIssuer with HS256 and separate secrets
// for access and refresh tokens.
type TokenIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

type accessClaims struct {
	jwt.RegisteredClaims
	ID       string `json:"_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type refreshClaims struct {
	jwt.RegisteredClaims
	ID string `json:"_id"`
}

func NewTokenIssuer(accessSecret, refreshSecret string, accessExpirySecs, refreshExpirySecs int64) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessExpiry:  time.Duration(accessExpirySecs) * time.Second,
		refreshExpiry: time.Duration(refreshExpirySecs) * time.Second,
	}
}

// SignAccessToken mints a short-lived token embedding the user's identity.
func (t *TokenIssuer) SignAccessToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.accessExpiry)),
		},
		ID:       user.ID.Hex(),
		Email:    user.Email,
		Username: user.Username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.accessSecret)
}

// SignRefreshToken mints a longer-lived token embedding only the user id.
func (t *TokenIssuer) SignRefreshToken(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	claims := refreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.refreshExpiry)),
		},
		ID: userID.Hex(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.refreshSecret)
}

// VerifyAccessToken parses and verifies an access token. Fails closed.
func (t *TokenIssuer) VerifyAccessToken(tokenString string) (*ports.AccessClaims, error) {
	claims := &accessClaims{}
	if err := t.parse(tokenString, claims, t.accessSecret); err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	return &ports.AccessClaims{
		UserID:   id,
		Email:    claims.Email,
		Username: claims.Username,
	}, nil
}

// VerifyRefreshToken parses and verifies a refresh token, returning the
// embedded user id.
func (t *TokenIssuer) VerifyRefreshToken(tokenString string) (primitive.ObjectID, error) {
	claims := &refreshClaims{}
	if err := t.parse(tokenString, claims, t.refreshSecret); err != nil {
		return primitive.NilObjectID, err
	}
	id, err := primitive.ObjectIDFromHex(claims.ID)
	if err != nil {
		return primitive.NilObjectID, ErrTokenInvalid
	}
	return id, nil
}

func (t *TokenIssuer) parse(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return ErrTokenInvalid
	}
	if !token.Valid {
		return ErrTokenInvalid
	}
	return nil
}
