package services

import (
	"context"
	"fmt"
	"time"

	"cricket_server/models"
	"cricket_server/storage"
)

// Sweeper prunes the availability pool before matching operations touch it.
// Expiry drops open posts that are a week old or whose weekday already
// passed in the current calendar week; dedup drops later copies of an
// identical open post. Matched posts are left alone, the lifecycle machine
// retires those. Callers treat sweep failures as advisory.
type Sweeper struct {
	Store storage.Store
	Now   func() time.Time
}

func (s *Sweeper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Sweep runs the expiry pass and then the dedup pass.
func (s *Sweeper) Sweep(ctx context.Context) error {
	posts, err := s.Store.ListAvailabilityPosts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list posts for sweep: %w", err)
	}

	now := s.now()
	seen := map[string]bool{}
	for _, post := range posts {
		if post.Status == models.PostStatusOpen && s.expired(post, now) {
			if err := s.Store.DeleteAvailabilityPost(ctx, post.ID); err != nil {
				return fmt.Errorf("failed to delete expired post %s: %w", post.ID, err)
			}
			continue
		}

		key := post.DedupKey() + "|" + post.Status
		if seen[key] && post.Status == models.PostStatusOpen {
			if err := s.Store.DeleteAvailabilityPost(ctx, post.ID); err != nil {
				return fmt.Errorf("failed to delete duplicate post %s: %w", post.ID, err)
			}
			continue
		}
		seen[key] = true
	}
	return nil
}

// expired applies the two expiry rules to an open post. Posts with an
// unparseable creation time are kept.
func (s *Sweeper) expired(post models.AvailabilityPost, now time.Time) bool {
	created, err := time.Parse(time.RFC3339, post.CreatedAt)
	if err != nil {
		return false
	}

	daysOld := int(now.Sub(created).Hours() / 24)
	if daysOld >= 7 {
		return true
	}

	// The post's weekday already came and went this week.
	todayIndex := models.WeekdayIndex(now.Weekday().String())
	postDayIndex := models.WeekdayIndex(post.Day)
	if postDayIndex < todayIndex && daysOld > 0 {
		return true
	}

	return false
}
