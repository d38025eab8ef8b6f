// Package mocks provides testify doubles for the service interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/svitlo-fund/donation-service/internal/liqpay"
	"github.com/svitlo-fund/donation-service/internal/models"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, message interface{}) error {
	args := m.Called(ctx, topic, message)
	return args.Error(0)
}

type MockSubmissionRepo struct {
	mock.Mock
}

func (m *MockSubmissionRepo) AddAnnouncement(a models.Announcement) models.Announcement {
	args := m.Called(a)
	return args.Get(0).(models.Announcement)
}

func (m *MockSubmissionRepo) Announcements() []models.Announcement {
	args := m.Called()
	return args.Get(0).([]models.Announcement)
}

func (m *MockSubmissionRepo) AddReview(r models.Review) models.Review {
	args := m.Called(r)
	return args.Get(0).(models.Review)
}

func (m *MockSubmissionRepo) Reviews() []models.Review {
	args := m.Called()
	return args.Get(0).([]models.Review)
}

type MockIntentBuilder struct {
	mock.Mock
}

func (m *MockIntentBuilder) Build(amount float64, isPublic bool, donorName string, locale models.Locale) (*liqpay.Checkout, error) {
	args := m.Called(amount, isPublic, donorName, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*liqpay.Checkout), args.Error(1)
}

func (m *MockIntentBuilder) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}
