package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"cricket_server/apperrors"
	"cricket_server/models"
	"cricket_server/storage"

	"github.com/google/uuid"
)

// AvailabilityService is the matching engine. Submitting a post sweeps the
// pool, rejects duplicates, persists the post and pairs it with the first
// compatible open post. The whole sequence runs under Mu so a concurrent
// read never observes a half-made match.
type AvailabilityService struct {
	Store   storage.Store
	Teams   *TeamService
	Sweeper *Sweeper
	Mu      *sync.Mutex
	Now     func() time.Time
}

// AvailabilityInput carries the fields a captain submits.
type AvailabilityInput struct {
	Day        string `json:"day"`
	Date       string `json:"date"`
	BetAmount  string `json:"bet_amount"`
	TimeSlot   string `json:"time_slot"`
	Ground     string `json:"ground"`
	GroundType string `json:"ground_type"`
	TeamName   string `json:"team_name"`
}

// SubmitResult is returned to the caller: either the match that was made or
// the still-open post with a waiting message.
type SubmitResult struct {
	Post    models.AvailabilityPost `json:"post"`
	Matched bool                    `json:"matched"`
	Match   *models.Match           `json:"match,omitempty"`
	Message string                  `json:"message"`
}

func (s *AvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SubmitAvailability validates and persists a new open post, then tries to
// pair it. Post creation, match creation and both status flips are one
// logical unit under the engine mutex.
func (s *AvailabilityService) SubmitAvailability(ctx context.Context, captainID string, input AvailabilityInput) (*SubmitResult, error) {
	if models.WeekdayIndex(input.Day) < 0 {
		return nil, fmt.Errorf("%w: day must be a weekday name", apperrors.ErrInvalidInput)
	}
	if input.BetAmount == "" {
		return nil, fmt.Errorf("%w: bet_amount is required", apperrors.ErrInvalidInput)
	}
	if input.GroundType == "" {
		input.GroundType = models.GroundTypeFree
	}
	if input.GroundType != models.GroundTypeFree && input.GroundType != models.GroundTypePaid {
		return nil, fmt.Errorf("%w: ground_type must be %q or %q", apperrors.ErrInvalidInput, models.GroundTypeFree, models.GroundTypePaid)
	}

	s.Mu.Lock()
	defer s.Mu.Unlock()

	if err := s.Sweeper.Sweep(ctx); err != nil {
		log.Printf("availability sweep failed, continuing: %v", err)
	}

	team, err := s.Teams.EnsureTeam(ctx, captainID, input.TeamName)
	if err != nil {
		return nil, err
	}

	ground := input.Ground
	if ground == "" {
		ground = team.Ground
	}

	post := models.AvailabilityPost{
		ID:         uuid.New().String(),
		TeamID:     team.ID,
		CaptainID:  captainID,
		Day:        input.Day,
		Date:       input.Date,
		BetAmount:  input.BetAmount,
		TimeSlot:   input.TimeSlot,
		Ground:     ground,
		GroundType: input.GroundType,
		Status:     models.PostStatusOpen,
		CreatedAt:  s.now().Format(time.RFC3339),
	}

	posts, err := s.Store.ListAvailabilityPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability posts: %w", err)
	}
	for _, p := range posts {
		if p.Status == models.PostStatusOpen && p.DedupKey() == post.DedupKey() {
			return nil, apperrors.ErrDuplicateRequest
		}
	}

	if err := s.Store.CreateAvailabilityPost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create availability post: %w", err)
	}

	candidate := findCandidate(posts, post)
	if candidate == nil {
		message := "Availability posted! Waiting for another captain with same day and bet amount."
		if post.GroundType == models.GroundTypePaid {
			message = "Paid ground availability posted! Waiting for another captain with same day, ground, and compatible bet range."
		}
		return &SubmitResult{Post: post, Matched: false, Message: message}, nil
	}

	match := models.Match{
		ID:         uuid.New().String(),
		Team1ID:    post.TeamID,
		Team2ID:    candidate.TeamID,
		Captain1ID: post.CaptainID,
		Captain2ID: candidate.CaptainID,
		Day:        post.Day,
		Date:       firstNonEmpty(post.Date, candidate.Date),
		BetAmount:  post.BetAmount,
		Ground:     firstNonEmpty(post.Ground, candidate.Ground),
		GroundType: post.GroundType,
		Status:     models.MatchStatusProposed,
		CreatedAt:  s.now().Format(time.RFC3339),
	}
	if err := s.Store.CreateMatch(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	post.Status = models.PostStatusMatched
	candidate.Status = models.PostStatusMatched
	if err := s.Store.UpdateAvailabilityPost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to retire post %s: %w", post.ID, err)
	}
	if err := s.Store.UpdateAvailabilityPost(ctx, *candidate); err != nil {
		return nil, fmt.Errorf("failed to retire post %s: %w", candidate.ID, err)
	}

	return &SubmitResult{
		Post:    post,
		Matched: true,
		Match:   &match,
		Message: "Match found! Check your matches to confirm.",
	}, nil
}

// findCandidate returns the first open post compatible with newPost, in
// store iteration order. Deliberately no ranking or tie-breaking: this is
// first-eligible-wins, not best-match selection.
func findCandidate(posts []models.AvailabilityPost, newPost models.AvailabilityPost) *models.AvailabilityPost {
	for i := range posts {
		p := &posts[i]
		if p.ID == newPost.ID || p.Status != models.PostStatusOpen {
			continue
		}
		if p.TeamID == newPost.TeamID || p.CaptainID == newPost.CaptainID {
			continue
		}
		if p.Day != newPost.Day {
			continue
		}

		if newPost.GroundType == models.GroundTypePaid {
			// Paid grounds: same ground, stake equal or negotiable on
			// either side.
			if p.GroundType == models.GroundTypePaid &&
				p.Ground == newPost.Ground &&
				stakeCompatible(p.BetAmount, newPost.BetAmount) {
				return p
			}
			continue
		}

		// Free grounds: exact stake and ground.
		if p.GroundType == newPost.GroundType &&
			p.BetAmount == newPost.BetAmount &&
			p.Ground == newPost.Ground {
			return p
		}
	}
	return nil
}

func stakeCompatible(a, b string) bool {
	return a == b || a == models.StakeNegotiable || b == models.StakeNegotiable
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// ListOpenPosts returns the open posts of the given ground type, enriched
// with team and captain details for the public open-requests board.
func (s *AvailabilityService) ListOpenPosts(ctx context.Context, groundType string) ([]models.EnrichedPost, error) {
	if groundType == "" {
		groundType = models.GroundTypeFree
	}

	s.Mu.Lock()
	defer s.Mu.Unlock()

	if err := s.Sweeper.Sweep(ctx); err != nil {
		log.Printf("availability sweep failed, continuing: %v", err)
	}

	posts, err := s.Store.ListAvailabilityPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list availability posts: %w", err)
	}

	enriched := []models.EnrichedPost{}
	for _, p := range posts {
		if p.Status != models.PostStatusOpen || p.GroundType != groundType {
			continue
		}
		e := models.EnrichedPost{AvailabilityPost: p}
		if team, err := s.Store.GetTeamByID(ctx, p.TeamID); err == nil && team != nil {
			e.TeamName = team.TeamName
		}
		if captain, err := s.Store.GetUserByID(ctx, p.CaptainID); err == nil && captain != nil {
			e.CaptainName = captain.Name
			e.CaptainPhone = captain.Phone
		}
		enriched = append(enriched, e)
	}
	return enriched, nil
}
