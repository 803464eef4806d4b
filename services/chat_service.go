package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"cricket_server/apperrors"
	"cricket_server/models"
	"cricket_server/storage"

	"github.com/google/uuid"
)

// ChatService is the per-match chat channel: an append-only message log
// gated by match membership. Messages stay readable on a cancelled match so
// captains can still sort out a declined fixture.
type ChatService struct {
	Store storage.Store
	Mu    *sync.Mutex
}

// PostMessage appends a message to the match's log with a server-assigned
// id and timestamp, denormalizing the sender's name at send time.
func (s *ChatService) PostMessage(ctx context.Context, matchID, captainID, text string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: message is empty", apperrors.ErrInvalidInput)
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

	senderName := ""
	if sender, err := s.Store.GetUserByID(ctx, captainID); err == nil && sender != nil {
		senderName = sender.Name
	}

	message := models.ChatMessage{
		ID:         uuid.New().String(),
		MatchID:    matchID,
		SenderID:   captainID,
		SenderName: senderName,
		Message:    text,
		Timestamp:  time.Now().Format(time.RFC3339),
	}
	if err := s.Store.CreateChatMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return &message, nil
}

// ListMessages returns the match's messages ordered by timestamp ascending,
// ties broken by insertion order. Same membership gate as PostMessage.
func (s *ChatService) ListMessages(ctx context.Context, matchID, captainID string) ([]models.ChatMessage, error) {
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

	messages, err := s.Store.ListChatMessagesByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp < messages[j].Timestamp
	})
	if messages == nil {
		messages = []models.ChatMessage{}
	}
	return messages, nil
}
