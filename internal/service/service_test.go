package service

import (
	"bitwise74/chores-api/internal/model"
	"bitwise74/chores-api/internal/store"
	"bitwise74/chores-api/internal/testutil"
	"bitwise74/chores-api/pkg/security"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// fakeRepo wraps a real store and lets tests count or break single calls
type fakeRepo struct {
	store.Repository

	createUserCalls int
	createUserErr   error
}

func (f *fakeRepo) CreateUser(ctx context.Context, u *model.User) error {
	f.createUserCalls++

	if f.createUserErr != nil {
		return f.createUserErr
	}

	return f.Repository.CreateUser(ctx, u)
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []*model.VerificationToken
	err  error
}

func (m *recordingMailer) SendVerificationMail(_ context.Context, t *model.VerificationToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	m.sent = append(m.sent, t)
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sent)
}

func newRepo(t *testing.T) *store.Store {
	t.Helper()
	return store.New(testutil.NewDB(t))
}

// fastHasher keeps the tests quick, production uses security.DefaultCost
func fastHasher() *security.BcryptHash {
	return &security.BcryptHash{Cost: bcrypt.MinCost}
}

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

var errBoom = errors.New("connection reset by peer")
