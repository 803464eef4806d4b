package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"cricket_server/models"
)

// fileData is the JSON snapshot layout on disk.
type fileData struct {
	Users             []models.User             `json:"users"`
	Teams             []models.Team             `json:"teams"`
	AvailabilityPosts []models.AvailabilityPost `json:"availabilityPosts"`
	Matches           []models.Match            `json:"matches"`
	ChatMessages      []models.ChatMessage      `json:"chatMessages"`
}

// FileStore keeps all entities in memory, ordered by insertion, and writes
// a JSON snapshot of the full data set after every mutation. With an empty
// path it never touches disk, which is the mode the service tests use.
type FileStore struct {
	mu   sync.RWMutex
	path string
	data fileData
}

// NewFileStore loads the snapshot at path if one exists. A missing file is
// not an error; the store starts empty.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %q: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("failed to parse data file %q: %w", path, err)
	}
	return s, nil
}

// NewMemoryStore returns a FileStore with no backing file.
func NewMemoryStore() *FileStore {
	s, _ := NewFileStore("")
	return s
}

// save writes the snapshot. Callers must hold the write lock.
func (s *FileStore) save() error {
	if s.path == "" {
		return nil
	}
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write data file %q: %w", s.path, err)
	}
	return nil
}

// Users

func (s *FileStore) CreateUser(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Users = append(s.data.Users, user)
	return s.save()
}

func (s *FileStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.data.Users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (s *FileStore) GetUserByPhone(_ context.Context, phone string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.data.Users {
		if u.Phone == phone {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (s *FileStore) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.data.Users {
		if u.ID == id {
			s.data.Users = append(s.data.Users[:i], s.data.Users[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// Teams

func (s *FileStore) CreateTeam(_ context.Context, team models.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Teams = append(s.data.Teams, team)
	return s.save()
}

func (s *FileStore) GetTeamByID(_ context.Context, id string) (*models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.data.Teams {
		if t.ID == id {
			team := t
			return &team, nil
		}
	}
	return nil, nil
}

func (s *FileStore) GetTeamByCaptain(_ context.Context, captainID string) (*models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.data.Teams {
		if t.CaptainID == captainID {
			team := t
			return &team, nil
		}
	}
	return nil, nil
}

// Availability posts

func (s *FileStore) CreateAvailabilityPost(_ context.Context, post models.AvailabilityPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.AvailabilityPosts = append(s.data.AvailabilityPosts, post)
	return s.save()
}

func (s *FileStore) GetAvailabilityPost(_ context.Context, id string) (*models.AvailabilityPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.data.AvailabilityPosts {
		if p.ID == id {
			post := p
			return &post, nil
		}
	}
	return nil, nil
}

func (s *FileStore) ListAvailabilityPosts(_ context.Context) ([]models.AvailabilityPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	posts := make([]models.AvailabilityPost, len(s.data.AvailabilityPosts))
	copy(posts, s.data.AvailabilityPosts)
	return posts, nil
}

func (s *FileStore) UpdateAvailabilityPost(_ context.Context, post models.AvailabilityPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.data.AvailabilityPosts {
		if p.ID == post.ID {
			s.data.AvailabilityPosts[i] = post
			return s.save()
		}
	}
	return fmt.Errorf("availability post %q not found for update", post.ID)
}

func (s *FileStore) DeleteAvailabilityPost(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.data.AvailabilityPosts {
		if p.ID == id {
			s.data.AvailabilityPosts = append(s.data.AvailabilityPosts[:i], s.data.AvailabilityPosts[i+1:]...)
			return s.save()
		}
	}
	return nil
}

// Matches

func (s *FileStore) CreateMatch(_ context.Context, match models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Matches = append(s.data.Matches, match)
	return s.save()
}

func (s *FileStore) GetMatch(_ context.Context, id string) (*models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.data.Matches {
		if m.ID == id {
			match := m
			return &match, nil
		}
	}
	return nil, nil
}

func (s *FileStore) ListMatches(_ context.Context) ([]models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := make([]models.Match, len(s.data.Matches))
	copy(matches, s.data.Matches)
	return matches, nil
}

func (s *FileStore) UpdateMatch(_ context.Context, match models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.data.Matches {
		if m.ID == match.ID {
			s.data.Matches[i] = match
			return s.save()
		}
	}
	return fmt.Errorf("match %q not found for update", match.ID)
}

// Chat messages

func (s *FileStore) CreateChatMessage(_ context.Context, message models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.ChatMessages = append(s.data.ChatMessages, message)
	return s.save()
}

func (s *FileStore) ListChatMessagesByMatch(_ context.Context, matchID string) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var messages []models.ChatMessage
	for _, m := range s.data.ChatMessages {
		if m.MatchID == matchID {
			messages = append(messages, m)
		}
	}
	return messages, nil
}
