package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeVerificationToken(t *testing.T) {
	expires := time.Now().Add(24 * time.Hour)

	tok, err := MakeVerificationToken(&VerificationTokenOpts{
		Identifier: "test@example.com",
		ExpiresAt:  &expires,
	})
	require.NoError(t, err)

	assert.Equal(t, "test@example.com", tok.Identifier)
	assert.Len(t, tok.Token, tokenSize*2)
	assert.True(t, tok.Expires.Equal(expires))

	other, err := MakeVerificationToken(&VerificationTokenOpts{
		Identifier: "test@example.com",
		ExpiresAt:  &expires,
	})
	require.NoError(t, err)
	assert.NotEqual(t, tok.Token, other.Token)
}

func TestMakeVerificationToken_MissingOptions(t *testing.T) {
	expires := time.Now()

	_, err := MakeVerificationToken(nil)
	assert.Error(t, err)

	_, err = MakeVerificationToken(&VerificationTokenOpts{ExpiresAt: &expires})
	assert.Error(t, err)

	_, err = MakeVerificationToken(&VerificationTokenOpts{Identifier: "test@example.com"})
	assert.Error(t, err)
}
