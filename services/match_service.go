package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"cricket_server/apperrors"
	"cricket_server/models"
	"cricket_server/storage"
)

// Decisions a captain can take on a proposed match.
const (
	DecisionConfirm = "confirm"
	DecisionDecline = "decline"
)

// MatchService is the match lifecycle state machine: proposed -> confirmed
// on mutual confirmation, proposed -> cancelled on a decline. Both end
// states are terminal.
type MatchService struct {
	Store storage.Store
	Mu    *sync.Mutex
}

// Decide records one captain's confirm/decline on a match. Confirming is
// idempotent per captain; once both captains confirmed the match is
// confirmed. Declining cancels the match immediately and reopens the two
// availability posts it consumed, best-effort. Deciding on a match that is
// already confirmed or cancelled is rejected.
func (s *MatchService) Decide(ctx context.Context, matchID, captainID, decision string) (*models.Match, error) {
	if decision != DecisionConfirm && decision != DecisionDecline {
		return nil, fmt.Errorf("%w: decision must be %q or %q", apperrors.ErrInvalidInput, DecisionConfirm, DecisionDecline)
	}

	s.Mu.Lock()
	defer s.Mu.Unlock()

	match, err := s.Store.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up match: %w", err)
	}
	if match == nil {
		return nil, apperrors.ErrMatchNotFound
	}
	if !match.HasCaptain(captainID) {
		return nil, apperrors.ErrForbidden
	}
	if match.Finalized() {
		return nil, apperrors.ErrMatchFinalized
	}

	if decision == DecisionConfirm {
		if match.Captain1ID == captainID {
			match.Captain1Confirmed = true
		} else {
			match.Captain2Confirmed = true
		}
		if match.Captain1Confirmed && match.Captain2Confirmed {
			match.Status = models.MatchStatusConfirmed
		}
		if err := s.Store.UpdateMatch(ctx, *match); err != nil {
			return nil, fmt.Errorf("failed to update match: %w", err)
		}
		return match, nil
	}

	match.Status = models.MatchStatusCancelled
	if err := s.Store.UpdateMatch(ctx, *match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}
	s.reopenPosts(ctx, match)
	return match, nil
}

// reopenPosts flips the two posts consumed by a declined match back to
// open so the matching engine can pair them again. A post that was already
// deleted is skipped.
func (s *MatchService) reopenPosts(ctx context.Context, match *models.Match) {
	posts, err := s.Store.ListAvailabilityPosts(ctx)
	if err != nil {
		log.Printf("failed to list posts while reopening for match %s: %v", match.ID, err)
		return
	}

	for _, teamID := range []string{match.Team1ID, match.Team2ID} {
		for _, p := range posts {
			if p.TeamID != teamID || p.Status != models.PostStatusMatched {
				continue
			}
			if p.Day != match.Day || !stakeCompatible(p.BetAmount, match.BetAmount) {
				continue
			}
			p.Status = models.PostStatusOpen
			if err := s.Store.UpdateAvailabilityPost(ctx, p); err != nil {
				log.Printf("failed to reopen post %s for match %s: %v", p.ID, match.ID, err)
			}
			break
		}
	}
}

// ListMatchesForCaptain returns every match the captain's team is part of,
// enriched with team names and the opponent captain's contact.
func (s *MatchService) ListMatchesForCaptain(ctx context.Context, captainID string) ([]models.EnrichedMatch, error) {
	team, err := s.Store.GetTeamByCaptain(ctx, captainID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up team: %w", err)
	}
	if team == nil {
		return []models.EnrichedMatch{}, nil
	}

	matches, err := s.Store.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	enriched := []models.EnrichedMatch{}
	for _, m := range matches {
		if m.Team1ID != team.ID && m.Team2ID != team.ID {
			continue
		}
		e := s.enrich(ctx, m)

		// Contact details of the opposite captain, for the requesting side.
		var opponentID string
		if m.Captain1ID == captainID {
			opponentID = m.Captain2ID
		} else if m.Captain2ID == captainID {
			opponentID = m.Captain1ID
		}
		if opponentID != "" {
			if opponent, err := s.Store.GetUserByID(ctx, opponentID); err == nil && opponent != nil {
				e.OpponentContact = &models.OpponentContact{Name: opponent.Name, Phone: opponent.Phone}
			}
		}
		enriched = append(enriched, e)
	}
	return enriched, nil
}

// ListAllMatches returns every match with team and captain names, for the
// admin view.
func (s *MatchService) ListAllMatches(ctx context.Context) ([]models.EnrichedMatch, error) {
	matches, err := s.Store.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	enriched := []models.EnrichedMatch{}
	for _, m := range matches {
		e := s.enrich(ctx, m)
		if captain1, err := s.Store.GetUserByID(ctx, m.Captain1ID); err == nil && captain1 != nil {
			e.Captain1Name = captain1.Name
		}
		if captain2, err := s.Store.GetUserByID(ctx, m.Captain2ID); err == nil && captain2 != nil {
			e.Captain2Name = captain2.Name
		}
		enriched = append(enriched, e)
	}
	return enriched, nil
}

func (s *MatchService) enrich(ctx context.Context, m models.Match) models.EnrichedMatch {
	e := models.EnrichedMatch{Match: m}
	if team1, err := s.Store.GetTeamByID(ctx, m.Team1ID); err == nil && team1 != nil {
		e.Team1Name = team1.TeamName
	}
	if team2, err := s.Store.GetTeamByID(ctx, m.Team2ID); err == nil && team2 != nil {
		e.Team2Name = team2.TeamName
	}
	return e
}
