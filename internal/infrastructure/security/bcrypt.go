package security

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the documented work factor for password hashing.
const DefaultBcryptCost = 10

// BcryptHasher implements ports.PasswordHasher. bcrypt embeds a per-call
// random salt in its output and provides its own constant-time compare.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
