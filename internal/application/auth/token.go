package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Default lifetimes (seconds). Overridable through config.
const (
	DefaultAccessTokenExpiry  = 900    // 15 min
	DefaultRefreshTokenExpiry = 604800 // 7 days
	DefaultTempTokenExpiry    = 1200   // 20 min
)

// newTemporaryToken returns a one-time token for email-verification and
// password-reset links: the raw value (20 bytes of entropy, hex) is handed to
// the caller exactly once; only its sha256 digest and the expiry are stored.
func newTemporaryToken(ttl time.Duration) (raw, hash string, expiry time.Time, err error) {
	buf := make([]byte, 20)
	if _, err = rand.Read(buf); err != nil {
		return "", "", time.Time{}, err
	}
	raw = hex.EncodeToString(buf)
	return raw, sha256Hash(raw), time.Now().Add(ttl), nil
}

// sha256Hash is the non-keyed digest used for temporary-token lookup.
func sha256Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
