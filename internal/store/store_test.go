package store

import (
	"bitwise74/chores-api/internal/model"
	"bitwise74/chores-api/internal/testutil"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(testutil.NewDB(t))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, &model.User{Name: "A", Email: "test@example.com", Level: 1}))

	err := s.CreateUser(ctx, &model.User{Name: "B", Email: "test@example.com", Level: 1})
	assert.ErrorIs(t, err, ErrUniqueViolation)
}

func TestCreateUser_AssignsID(t *testing.T) {
	s := newStore(t)

	u := &model.User{Name: "A", Email: "test@example.com", Level: 1}
	require.NoError(t, s.CreateUser(context.Background(), u))
	assert.NotEmpty(t, u.ID)

	found, err := s.FindUserByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", found.Email)
	assert.Nil(t, found.Password)
	assert.Nil(t, found.EmailVerified)
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	s := newStore(t)

	_, err := s.FindUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAccount_DuplicateProviderIdentity(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	u := &model.User{Name: "A", Email: "a@example.com", Level: 1}
	require.NoError(t, s.CreateUser(ctx, u))
	require.NoError(t, s.CreateAccount(ctx, &model.Account{
		UserID: u.ID, Type: "oauth", Provider: "google", ProviderAccountID: "12345",
	}))

	err := s.CreateAccount(ctx, &model.Account{
		UserID: u.ID, Type: "oauth", Provider: "google", ProviderAccountID: "12345",
	})
	assert.ErrorIs(t, err, ErrUniqueViolation)

	// Same id at another provider is a different identity
	require.NoError(t, s.CreateAccount(ctx, &model.Account{
		UserID: u.ID, Type: "oauth", Provider: "github", ProviderAccountID: "12345",
		Scope: model.StringSlice{"read:user", "user:email"},
	}))

	a, err := s.FindAccount(ctx, "github", "12345")
	require.NoError(t, err)
	assert.Equal(t, model.StringSlice{"read:user", "user:email"}, a.Scope)
}

func TestTransaction_RollsBack(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Transaction(ctx, func(tx Repository) error {
		if err := tx.CreateUser(ctx, &model.User{Name: "A", Email: "a@example.com", Level: 1}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = s.FindUserByEmail(ctx, "a@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerificationTokens(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	now := time.Now()

	live := &model.VerificationToken{Identifier: "a@example.com", Token: "live", Expires: now.Add(time.Hour)}
	expired := &model.VerificationToken{Identifier: "a@example.com", Token: "expired", Expires: now.Add(-time.Hour)}
	require.NoError(t, s.CreateVerificationToken(ctx, live))
	require.NoError(t, s.CreateVerificationToken(ctx, expired))

	dup := &model.VerificationToken{Identifier: "a@example.com", Token: "live", Expires: now.Add(time.Hour)}
	assert.ErrorIs(t, s.CreateVerificationToken(ctx, dup), ErrUniqueViolation)

	n, err := s.DeleteExpiredVerificationTokens(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = s.FindVerificationToken(ctx, "expired")
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := s.FindVerificationToken(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", found.Identifier)

	require.NoError(t, s.DeleteVerificationToken(ctx, "live"))
	assert.ErrorIs(t, s.DeleteVerificationToken(ctx, "live"), ErrNotFound)
}

func TestMarkEmailVerified(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, s.CreateUser(ctx, &model.User{Name: "A", Email: "a@example.com", Level: 1}))
	require.NoError(t, s.MarkEmailVerified(ctx, "a@example.com", now))

	u, err := s.FindUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, u.EmailVerified)
	assert.True(t, u.EmailVerified.Equal(now))

	assert.ErrorIs(t, s.MarkEmailVerified(ctx, "nobody@example.com", now), ErrNotFound)
}

func TestSessions(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	now := time.Now()

	u := &model.User{Name: "A", Email: "a@example.com", Level: 1}
	require.NoError(t, s.CreateUser(ctx, u))

	require.NoError(t, s.CreateSession(ctx, &model.Session{SessionToken: "old", UserID: u.ID, Expires: now.Add(-time.Minute)}))
	require.NoError(t, s.CreateSession(ctx, &model.Session{SessionToken: "new", UserID: u.ID, Expires: now.Add(time.Hour)}))

	n, err := s.DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	sess, err := s.FindSession(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, u.ID, sess.UserID)

	require.NoError(t, s.DeleteSession(ctx, "new"))
	_, err = s.FindSession(ctx, "new")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveResendRequest_Upserts(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	u := &model.User{Name: "A", Email: "a@example.com", Level: 1}
	require.NoError(t, s.CreateUser(ctx, u))

	require.NoError(t, s.SaveResendRequest(ctx, &model.ResendRequest{UserID: u.ID, LastResend: now, Cooldown: now.Add(time.Minute)}))
	require.NoError(t, s.SaveResendRequest(ctx, &model.ResendRequest{UserID: u.ID, LastResend: now, Cooldown: now.Add(time.Hour)}))

	r, err := s.FindResendRequest(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, r.Cooldown.Equal(now.Add(time.Hour)))
}

func TestListAchievements_DefaultCatalogue(t *testing.T) {
	s := newStore(t)

	out, err := s.ListAchievements(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "First Chore", out[0].Name)
	assert.Equal(t, "Weekly Warrior", out[1].Name)
}
