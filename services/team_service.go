package services

import (
	"context"
	"fmt"
	"time"

	"cricket_server/apperrors"
	"cricket_server/models"
	"cricket_server/storage"

	"github.com/google/uuid"
)

// TeamService is the team directory: it resolves a captain to their one
// team and provisions a default team on first use.
type TeamService struct {
	Store storage.Store
}

// GetTeamForCaptain returns the captain's team.
func (s *TeamService) GetTeamForCaptain(ctx context.Context, captainID string) (*models.Team, error) {
	team, err := s.Store.GetTeamByCaptain(ctx, captainID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up team: %w", err)
	}
	if team == nil {
		return nil, apperrors.ErrTeamNotFound
	}
	return team, nil
}

// EnsureTeam returns the captain's team, creating one when none exists yet.
// teamName is only used at creation time; when empty the team is named
// after the captain.
func (s *TeamService) EnsureTeam(ctx context.Context, captainID, teamName string) (*models.Team, error) {
	team, err := s.Store.GetTeamByCaptain(ctx, captainID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up team: %w", err)
	}
	if team != nil {
		return team, nil
	}

	if teamName == "" {
		user, err := s.Store.GetUserByID(ctx, captainID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up captain: %w", err)
		}
		if user == nil {
			return nil, apperrors.ErrUserNotFound
		}
		teamName = user.Name + "'s XI"
	}

	created := models.Team{
		ID:        uuid.New().String(),
		CaptainID: captainID,
		TeamName:  teamName,
		Ground:    models.DefaultGround,
		Members:   []string{captainID},
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	if err := s.Store.CreateTeam(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return &created, nil
}
