package services

import (
	"context"
	"testing"

	"cricket_server/apperrors"
	"cricket_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// proposeMatch pairs two fresh captains on the same tuple and returns the
// proposed match with captain A as side 2 and captain B as side 1.
func proposeMatch(t *testing.T, env *testEnv) (models.Match, models.User, models.User) {
	t.Helper()
	captainA := env.createCaptain(t, "Rohit", "9000000001")
	captainB := env.createCaptain(t, "Virat", "9000000002")

	env.submit(t, captainA.ID, AvailabilityInput{Day: "Friday", BetAmount: "500"})
	result := env.submit(t, captainB.ID, AvailabilityInput{Day: "Friday", BetAmount: "500"})
	require.True(t, result.Matched)
	return *result.Match, captainA, captainB
}

func TestDecide_ConfirmationMonotonic(t *testing.T) {
	env := setupEnv(t)
	match, captainA, captainB := proposeMatch(t, env)
	ctx := context.Background()

	updated, err := env.matches.Decide(ctx, match.ID, captainA.ID, DecisionConfirm)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusProposed, updated.Status)
	assert.True(t, updated.Captain2Confirmed, "captain A is side 2")
	assert.False(t, updated.Captain1Confirmed)

	// Confirming twice is idempotent.
	again, err := env.matches.Decide(ctx, match.ID, captainA.ID, DecisionConfirm)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusProposed, again.Status)
	assert.True(t, again.Captain2Confirmed)

	final, err := env.matches.Decide(ctx, match.ID, captainB.ID, DecisionConfirm)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusConfirmed, final.Status)
	assert.True(t, final.Captain1Confirmed)
	assert.True(t, final.Captain2Confirmed)
}

func TestDecide_DeclineReopensPosts(t *testing.T) {
	env := setupEnv(t)
	match, captainA, _ := proposeMatch(t, env)
	ctx := context.Background()

	updated, err := env.matches.Decide(ctx, match.ID, captainA.ID, DecisionDecline)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusCancelled, updated.Status)

	posts, err := env.store.ListAvailabilityPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.Equal(t, models.PostStatusOpen, p.Status)
	}
}

func TestDecide_ReopenedPostsMatchAgain(t *testing.T) {
	env := setupEnv(t)
	match, captainA, _ := proposeMatch(t, env)
	ctx := context.Background()

	_, err := env.matches.Decide(ctx, match.ID, captainA.ID, DecisionDecline)
	require.NoError(t, err)

	captainC := env.createCaptain(t, "Rahul", "9000000003")
	result := env.submit(t, captainC.ID, AvailabilityInput{Day: "Friday", BetAmount: "500"})
	assert.True(t, result.Matched, "a reopened post is eligible again")
}

func TestDecide_DeclineReopenSkipsDeletedPosts(t *testing.T) {
	env := setupEnv(t)
	match, captainA, _ := proposeMatch(t, env)
	ctx := context.Background()

	posts, err := env.store.ListAvailabilityPosts(ctx)
	require.NoError(t, err)
	require.NoError(t, env.store.DeleteAvailabilityPost(ctx, posts[0].ID))

	// Reopening is best-effort: the missing post is skipped.
	updated, err := env.matches.Decide(ctx, match.ID, captainA.ID, DecisionDecline)
	require.NoError(t, err)
	assert.Equal(t, models.MatchStatusCancelled, updated.Status)

	remaining, err := env.store.ListAvailabilityPosts(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, models.PostStatusOpen, remaining[0].Status)
}

func TestDecide_Forbidden(t *testing.T) {
	env := setupEnv(t)
	match, _, _ := proposeMatch(t, env)
	stranger := env.createCaptain(t, "Hardik", "9000000009")

	_, err := env.matches.Decide(context.Background(), match.ID, stranger.ID, DecisionConfirm)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestDecide_NotFound(t *testing.T) {
	env := setupEnv(t)
	captain := env.createCaptain(t, "Rohit", "9000000001")

	_, err := env.matches.Decide(context.Background(), "no-such-match", captain.ID, DecisionConfirm)
	assert.ErrorIs(t, err, apperrors.ErrMatchNotFound)
}

func TestDecide_InvalidDecision(t *testing.T) {
	env := setupEnv(t)
	match, captainA, _ := proposeMatch(t, env)

	_, err := env.matches.Decide(context.Background(), match.ID, captainA.ID, "maybe")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestDecide_FinalizedMatchRejected(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	t.Run("after decline", func(t *testing.T) {
		match, captainA, captainB := proposeMatch(t, env)
		_, err := env.matches.Decide(ctx, match.ID, captainA.ID, DecisionDecline)
		require.NoError(t, err)

		_, err = env.matches.Decide(ctx, match.ID, captainB.ID, DecisionConfirm)
		assert.ErrorIs(t, err, apperrors.ErrMatchFinalized)
	})

	t.Run("after mutual confirm", func(t *testing.T) {
		env := setupEnv(t)
		match, captainA, captainB := proposeMatch(t, env)
		_, err := env.matches.Decide(ctx, match.ID, captainA.ID, DecisionConfirm)
		require.NoError(t, err)
		_, err = env.matches.Decide(ctx, match.ID, captainB.ID, DecisionConfirm)
		require.NoError(t, err)

		_, err = env.matches.Decide(ctx, match.ID, captainA.ID, DecisionDecline)
		assert.ErrorIs(t, err, apperrors.ErrMatchFinalized)
	})
}

func TestListMatchesForCaptain_EnrichesOpponentContact(t *testing.T) {
	env := setupEnv(t)
	match, captainA, captainB := proposeMatch(t, env)
	ctx := context.Background()

	listed, err := env.matches.ListMatchesForCaptain(ctx, captainA.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, match.ID, listed[0].ID)
	assert.Equal(t, "Virat Strikers", listed[0].Team1Name)
	assert.Equal(t, "Rohit Strikers", listed[0].Team2Name)
	require.NotNil(t, listed[0].OpponentContact)
	assert.Equal(t, captainB.Name, listed[0].OpponentContact.Name)
	assert.Equal(t, captainB.Phone, listed[0].OpponentContact.Phone)

	// A captain with no team sees an empty list.
	none, err := env.matches.ListMatchesForCaptain(ctx, "unknown-captain")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListAllMatches_AdminView(t *testing.T) {
	env := setupEnv(t)
	_, captainA, captainB := proposeMatch(t, env)

	all, err := env.matches.ListAllMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, captainB.Name, all[0].Captain1Name)
	assert.Equal(t, captainA.Name, all[0].Captain2Name)
	assert.Nil(t, all[0].OpponentContact)
}
