package storage

import (
	"context"
	"path/filepath"
	"testing"

	"cricket_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.CreateUser(ctx, models.User{ID: "u1", Name: "Rohit", Phone: "9000000001"}))
	require.NoError(t, store.CreateTeam(ctx, models.Team{ID: "t1", CaptainID: "u1", TeamName: "Mumbai Kings"}))
	require.NoError(t, store.CreateAvailabilityPost(ctx, models.AvailabilityPost{ID: "p1", TeamID: "t1", Status: models.PostStatusOpen}))
	require.NoError(t, store.CreateMatch(ctx, models.Match{ID: "m1", Team1ID: "t1", Status: models.MatchStatusProposed}))
	require.NoError(t, store.CreateChatMessage(ctx, models.ChatMessage{ID: "c1", MatchID: "m1", Message: "hello"}))

	// A fresh store over the same file sees everything.
	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	user, err := reopened.GetUserByPhone(ctx, "9000000001")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Rohit", user.Name)

	team, err := reopened.GetTeamByCaptain(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, team)

	posts, err := reopened.ListAvailabilityPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	match, err := reopened.GetMatch(ctx, "m1")
	require.NoError(t, err)
	require.NotNil(t, match)

	messages, err := reopened.ListChatMessagesByMatch(ctx, "m1")
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestFileStore_MissingFileStartsEmpty(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	posts, err := store.ListAvailabilityPosts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestFileStore_LookupsReturnNilWhenAbsent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	user, err := store.GetUserByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, user)

	match, err := store.GetMatch(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, match)

	team, err := store.GetTeamByCaptain(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, team)
}

func TestFileStore_UpdateAndDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	post := models.AvailabilityPost{ID: "p1", Status: models.PostStatusOpen}
	require.NoError(t, store.CreateAvailabilityPost(ctx, post))

	post.Status = models.PostStatusMatched
	require.NoError(t, store.UpdateAvailabilityPost(ctx, post))

	got, err := store.GetAvailabilityPost(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.PostStatusMatched, got.Status)

	require.NoError(t, store.DeleteAvailabilityPost(ctx, "p1"))
	got, err = store.GetAvailabilityPost(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting twice is harmless.
	require.NoError(t, store.DeleteAvailabilityPost(ctx, "p1"))

	// Updating a missing record is an error the caller can surface.
	assert.Error(t, store.UpdateAvailabilityPost(ctx, models.AvailabilityPost{ID: "ghost"}))
}

func TestFileStore_ListPreservesInsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.CreateAvailabilityPost(ctx, models.AvailabilityPost{ID: id, Status: models.PostStatusOpen}))
	}

	posts, err := store.ListAvailabilityPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "a", posts[0].ID)
	assert.Equal(t, "b", posts[1].ID)
	assert.Equal(t, "c", posts[2].ID)
}
