// Package store keeps user submissions awaiting moderation.
//
// The store is memory-resident and process-local: every collection is
// empty on startup and its contents are lost on restart. That is a known
// limitation of this deployment, not an accident; replacing it with a
// durable backend is a separate, explicit decision.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/svitlo-fund/donation-service/internal/models"
)

// collection is a guarded most-recent-first slice of entities of type T.
type collection[T any] struct {
	mu    sync.RWMutex
	items []T
}

// insert puts item at the head of the collection.
func (c *collection[T]) insert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
}

// all returns a copy of the collection in stored order.
func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// SubmissionStore holds announcements and reviews across requests.
type SubmissionStore struct {
	announcements collection[models.Announcement]
	reviews       collection[models.Review]
}

func New() *SubmissionStore {
	return &SubmissionStore{}
}

// AddAnnouncement assigns identity and pending status to the entity and
// stores it as the newest item. The returned value is what got stored.
func (s *SubmissionStore) AddAnnouncement(a models.Announcement) models.Announcement {
	a.ID = uuid.New().String()
	a.Status = models.StatusPending
	a.Verified = false
	a.CreatedAt = time.Now().UTC()
	s.announcements.insert(a)
	return a
}

// Announcements returns every stored announcement, newest first, in all
// statuses. Filtering approved items for public display is the caller's
// responsibility.
func (s *SubmissionStore) Announcements() []models.Announcement {
	return s.announcements.all()
}

// AddReview assigns identity and pending status to the entity and stores
// it as the newest item.
func (s *SubmissionStore) AddReview(r models.Review) models.Review {
	r.ID = uuid.New().String()
	r.Status = models.StatusPending
	r.CreatedAt = time.Now().UTC()
	s.reviews.insert(r)
	return r
}

// Reviews returns every stored review, newest first, in all statuses.
func (s *SubmissionStore) Reviews() []models.Review {
	return s.reviews.all()
}
