package service

import (
	"bitwise74/chores-api/internal/model"
	"bitwise74/chores-api/internal/store"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func googleProfile() OAuthProfile {
	return OAuthProfile{
		Provider:          "google",
		ProviderAccountID: "12345",
		Email:             "oauth@example.com",
		Name:              "OAuth User",
	}
}

func TestCreateFromOAuth_Success(t *testing.T) {
	repo := newRepo(t)
	s := NewUserService(repo, fastHasher())
	ctx := context.Background()

	u, err := s.CreateFromOAuth(ctx, googleProfile())
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Nil(t, u.Password)
	assert.NotNil(t, u.EmailVerified)
	assert.Equal(t, 0, u.Points)
	assert.Equal(t, 1, u.Level)

	acc, err := repo.FindAccount(ctx, "google", "12345")
	require.NoError(t, err)
	assert.Equal(t, u.ID, acc.UserID)
	assert.Equal(t, "oauth", acc.Type)
}

func TestCreateFromOAuth_EmailExists(t *testing.T) {
	repo := newRepo(t)
	s := NewUserService(repo, fastHasher())
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "Existing", "oauth@example.com", "Password123!")
	require.NoError(t, err)

	_, err = s.CreateFromOAuth(ctx, googleProfile())
	assert.ErrorIs(t, err, ErrOAuthEmailExists)

	_, err = repo.FindAccount(ctx, "google", "12345")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateFromOAuth_RollsBackUserWhenAccountFails(t *testing.T) {
	repo := newRepo(t)
	s := NewUserService(repo, fastHasher())
	ctx := context.Background()

	// Another user already owns the provider identity so the account insert
	// fails after the user insert succeeded
	other := &model.User{Name: "Other", Email: "other@example.com", Level: 1}
	require.NoError(t, repo.CreateUser(ctx, other))
	require.NoError(t, repo.CreateAccount(ctx, &model.Account{
		UserID: other.ID, Type: "oauth", Provider: "google", ProviderAccountID: "12345",
	}))

	_, err := s.CreateFromOAuth(ctx, googleProfile())
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUniqueViolation)

	_, err = repo.FindUserByEmail(ctx, "oauth@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSignInWithOAuth(t *testing.T) {
	repo := newRepo(t)
	s := NewUserService(repo, fastHasher())
	s.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	first, created, err := s.SignInWithOAuth(ctx, googleProfile())
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := s.SignInWithOAuth(ctx, googleProfile())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	_, _, err = s.SignInWithOAuth(ctx, OAuthProfile{Email: "x@example.com"})
	assert.Error(t, err)
}
