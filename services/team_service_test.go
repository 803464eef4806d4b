package services

import (
	"context"
	"testing"
	"time"

	"cricket_server/apperrors"
	"cricket_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureTeam_AutoProvisionsDefault(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()

	// A user with no team yet (signed up without one).
	user := models.User{
		ID:        "captain-1",
		Name:      "Jasprit",
		Phone:     "9000000007",
		Role:      models.RoleCaptain,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	require.NoError(t, env.store.CreateUser(ctx, user))

	team, err := env.teams.EnsureTeam(ctx, user.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "Jasprit's XI", team.TeamName)
	assert.Equal(t, models.DefaultGround, team.Ground)
	assert.Equal(t, user.ID, team.CaptainID)

	// Second call returns the same team, never a second one.
	again, err := env.teams.EnsureTeam(ctx, user.ID, "Other Name")
	require.NoError(t, err)
	assert.Equal(t, team.ID, again.ID)
}

func TestGetTeamForCaptain_NotFound(t *testing.T) {
	env := setupEnv(t)

	_, err := env.teams.GetTeamForCaptain(context.Background(), "nobody")
	assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
}
