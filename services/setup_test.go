package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"cricket_server/models"
	"cricket_server/storage"

	"github.com/stretchr/testify/require"
)

// testEnv wires every service against one in-memory store with a settable
// clock. 2025-06-11 is a Wednesday; the sweeper tests rely on that.
type testEnv struct {
	store   *storage.FileStore
	teams   *TeamService
	auth    *AuthService
	sweeper *Sweeper
	avail   *AvailabilityService
	matches *MatchService
	chat    *ChatService
	now     time.Time
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		store: storage.NewMemoryStore(),
		now:   time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC),
	}
	nowFn := func() time.Time { return env.now }

	var mu sync.Mutex
	env.teams = &TeamService{Store: env.store}
	env.auth = &AuthService{
		Store:    env.store,
		Teams:    env.teams,
		Secret:   []byte("test-secret"),
		TokenTTL: time.Hour,
	}
	env.sweeper = &Sweeper{Store: env.store, Now: nowFn}
	env.avail = &AvailabilityService{
		Store:   env.store,
		Teams:   env.teams,
		Sweeper: env.sweeper,
		Mu:      &mu,
		Now:     nowFn,
	}
	env.matches = &MatchService{Store: env.store, Mu: &mu}
	env.chat = &ChatService{Store: env.store, Mu: &mu}
	return env
}

// createCaptain signs up a captain, which also provisions their team.
func (e *testEnv) createCaptain(t *testing.T, name, phone string) models.User {
	t.Helper()
	result, err := e.auth.SignUp(context.Background(), SignupInput{
		Name:     name,
		Phone:    phone,
		Password: "secret123",
		TeamName: name + " Strikers",
	})
	require.NoError(t, err)
	return result.User
}

// submit posts availability and requires success.
func (e *testEnv) submit(t *testing.T, captainID string, input AvailabilityInput) *SubmitResult {
	t.Helper()
	result, err := e.avail.SubmitAvailability(context.Background(), captainID, input)
	require.NoError(t, err)
	return result
}
