package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/svitlo-fund/donation-service/internal/metrics"
	"github.com/svitlo-fund/donation-service/internal/models"
	"github.com/svitlo-fund/donation-service/internal/models/dto"
)

// SubmissionRepo defines the interface for the moderated-submission
// collections. The in-memory store is the only implementation in this
// deployment.
type SubmissionRepo interface {
	AddAnnouncement(a models.Announcement) models.Announcement
	Announcements() []models.Announcement
	AddReview(r models.Review) models.Review
	Reviews() []models.Review
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// SubmissionService accepts user-submitted announcements and reviews,
// validates them and hands them to the pending queue. Event publication
// is best effort: a submission that made it into the store succeeds even
// when the moderation notification cannot be delivered.
type SubmissionService struct {
	Repo      SubmissionRepo
	Publisher Publisher
}

func NewSubmissionService(repo SubmissionRepo, publisher Publisher) *SubmissionService {
	return &SubmissionService{
		Repo:      repo,
		Publisher: publisher,
	}
}

// SubmitAnnouncement validates the submission and stores it with pending
// status. Returns the stored item or the full set of field violations.
func (s *SubmissionService) SubmitAnnouncement(ctx context.Context, in *dto.Announcement) (*models.Announcement, error) {
	in.Sanitize()
	announcement := in.ToEntity()
	if err := announcement.Validate(); err != nil {
		metrics.SubmissionRejectionsTotal.WithLabelValues("announcement").Inc()
		return nil, err
	}

	stored := s.Repo.AddAnnouncement(*announcement)
	metrics.SubmissionsTotal.WithLabelValues("announcement").Inc()
	s.notify(ctx, "announcement", stored.ID, stored.CreatedAt)
	return &stored, nil
}

// ListAnnouncements returns every announcement, newest first, all
// statuses included.
func (s *SubmissionService) ListAnnouncements(ctx context.Context) []models.Announcement {
	return s.Repo.Announcements()
}

// SubmitReview validates the submission and stores it with pending
// status.
func (s *SubmissionService) SubmitReview(ctx context.Context, in *dto.Review) (*models.Review, error) {
	in.Sanitize()
	review := in.ToEntity()
	if err := review.Validate(); err != nil {
		metrics.SubmissionRejectionsTotal.WithLabelValues("review").Inc()
		return nil, err
	}

	stored := s.Repo.AddReview(*review)
	metrics.SubmissionsTotal.WithLabelValues("review").Inc()
	s.notify(ctx, "review", stored.ID, stored.CreatedAt)
	return &stored, nil
}

// ListReviews returns every review, newest first, all statuses included.
func (s *SubmissionService) ListReviews(ctx context.Context) []models.Review {
	return s.Repo.Reviews()
}

func (s *SubmissionService) notify(ctx context.Context, kind, id string, createdAt time.Time) {
	if s.Publisher == nil {
		return
	}
	event := models.SubmissionReceivedEvent{
		Kind:      kind,
		ID:        id,
		Status:    string(models.StatusPending),
		CreatedAt: createdAt,
	}
	if err := s.Publisher.Publish(ctx, models.SubmissionReceivedTopic, event); err != nil {
		logrus.Errorf("error publishing submission event for %s %s: %s", kind, id, err.Error())
	}
}
