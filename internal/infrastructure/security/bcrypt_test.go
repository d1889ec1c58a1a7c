package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(DefaultBcryptCost)

	hash, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	require.True(t, h.Verify("correct horse battery staple", hash))
	require.False(t, h.Verify("wrong password", hash))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewBcryptHasher(DefaultBcryptCost)

	first, err := h.Hash("s3cretpass")
	require.NoError(t, err)
	second, err := h.Hash("s3cretpass")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	h := NewBcryptHasher(0)
	hash, err := h.Hash("s3cretpass")
	require.NoError(t, err)
	require.True(t, h.Verify("s3cretpass", hash))
}
