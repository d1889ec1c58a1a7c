package ports

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ravi-kumar178/Project-Management/internal/domain"
)

// PasswordHasher hashes and verifies passwords (bcrypt).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// AccessClaims are the identity claims embedded in an access token.
type AccessClaims struct {
	UserID   primitive.ObjectID
	Email    string
	Username string
}

// TokenIssuer signs and verifies the access/refresh token pair (HS256, two
// secrets). Verification fails closed: any parse, signature, or expiry error
// denies access. Expired tokens are distinguishable from invalid ones.
type TokenIssuer interface {
	SignAccessToken(user *domain.User) (string, error)
	SignRefreshToken(userID primitive.ObjectID) (string, error)
	VerifyAccessToken(token string) (*AccessClaims, error)
	VerifyRefreshToken(token string) (primitive.ObjectID, error)
}
