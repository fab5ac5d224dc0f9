package service

import (
	"bitwise74/chores-api/pkg/security"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	u := addUser(t, repo, "test@example.com")

	s := NewSessionService(repo, security.NewJWTSigner("test-secret"), time.Hour)

	signed, sess, err := s.Create(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, sess.UserID)

	got, err := s.Authenticate(ctx, signed)
	require.NoError(t, err)
	assert.Equal(t, sess.SessionToken, got.SessionToken)

	require.NoError(t, s.Revoke(ctx, sess.SessionToken))

	_, err = s.Authenticate(ctx, signed)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestAuthenticate_RejectsForeignSignature(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	u := addUser(t, repo, "test@example.com")

	issuer := NewSessionService(repo, security.NewJWTSigner("one"), time.Hour)
	checker := NewSessionService(repo, security.NewJWTSigner("two"), time.Hour)

	signed, _, err := issuer.Create(ctx, u.ID)
	require.NoError(t, err)

	_, err = checker.Authenticate(ctx, signed)
	assert.ErrorIs(t, err, ErrSessionInvalid)

	_, err = checker.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, ErrSessionInvalid)
}
