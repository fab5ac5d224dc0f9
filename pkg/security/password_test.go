package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHash(t *testing.T) {
	h := New()

	hash, err := h.GenerateFromPassword("Password123!")
	require.NoError(t, err)
	assert.Regexp(t, `^\$2[aby]\$10\$`, hash)
	assert.NotContains(t, hash, "Password123!")

	ok, err := h.VerifyPasswd("Password123!", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.VerifyPasswd("WrongPassword1!", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHash_SaltsEveryHash(t *testing.T) {
	h := &BcryptHash{Cost: 4}

	a, err := h.GenerateFromPassword("Password123!")
	require.NoError(t, err)
	b, err := h.GenerateFromPassword("Password123!")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestBcryptHash_MalformedHash(t *testing.T) {
	ok, err := New().VerifyPasswd("Password123!", "not-a-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}
