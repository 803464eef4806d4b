package storage

import (
	"context"

	"cricket_server/models"
)

// Store is the entity store consumed by every service. Lookup methods
// return (nil, nil) when the entity does not exist; services translate that
// into their own error kinds. Updates replace the whole record (last write
// wins). Implementations do not apply business rules.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error

	// Teams
	CreateTeam(ctx context.Context, team models.Team) error
	GetTeamByID(ctx context.Context, id string) (*models.Team, error)
	GetTeamByCaptain(ctx context.Context, captainID string) (*models.Team, error)

	// Availability posts
	CreateAvailabilityPost(ctx context.Context, post models.AvailabilityPost) error
	GetAvailabilityPost(ctx context.Context, id string) (*models.AvailabilityPost, error)
	ListAvailabilityPosts(ctx context.Context) ([]models.AvailabilityPost, error)
	UpdateAvailabilityPost(ctx context.Context, post models.AvailabilityPost) error
	DeleteAvailabilityPost(ctx context.Context, id string) error

	// Matches
	CreateMatch(ctx context.Context, match models.Match) error
	GetMatch(ctx context.Context, id string) (*models.Match, error)
	ListMatches(ctx context.Context) ([]models.Match, error)
	UpdateMatch(ctx context.Context, match models.Match) error

	// Chat messages
	CreateChatMessage(ctx context.Context, message models.ChatMessage) error
	ListChatMessagesByMatch(ctx context.Context, matchID string) ([]models.ChatMessage, error)
}
