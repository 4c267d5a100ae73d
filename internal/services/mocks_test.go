package services_test

import (
	"context"

	"github.com/getmentor/mentor-aggregator/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockMentorLookup is a mock implementation of services.MentorLookup
type MockMentorLookup struct {
	mock.Mock
}

func (m *MockMentorLookup) GetMentorByID(ctx context.Context, id string) (*models.Mentor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentor), args.Error(1)
}

// MockPlatform is a mock adapter that can also schedule and message
type MockPlatform struct {
	mock.Mock
	platform models.Platform
}

func (m *MockPlatform) Platform() models.Platform {
	return m.platform
}

func (m *MockPlatform) FetchMentors(ctx context.Context, filters models.MentorFilters) []*models.Mentor {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*models.Mentor)
}

func (m *MockPlatform) ScheduleMeeting(ctx context.Context, mentor *models.Mentor, req models.ScheduleMeetingRequest) (*models.BookingResult, error) {
	args := m.Called(ctx, mentor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResult), args.Error(1)
}

func (m *MockPlatform) SendMessage(ctx context.Context, mentor *models.Mentor, req models.SendMessageRequest) (*models.MessageResult, error) {
	args := m.Called(ctx, mentor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MessageResult), args.Error(1)
}

// MockAvailabilityProvider is a mock implementation of platforms.AvailabilityProvider
type MockAvailabilityProvider struct {
	mock.Mock
}

func (m *MockAvailabilityProvider) GetAvailability(ctx context.Context, mentorID, bookingURL string) models.Availability {
	args := m.Called(ctx, mentorID, bookingURL)
	return args.Get(0).(models.Availability)
}

// staticAdapter lists a fixed set of mentors
type staticAdapter struct {
	platform models.Platform
	mentors  []*models.Mentor
}

func (a staticAdapter) Platform() models.Platform { return a.platform }

func (a staticAdapter) FetchMentors(context.Context, models.MentorFilters) []*models.Mentor {
	return a.mentors
}

// panickingAdapter breaks the aggregation
type panickingAdapter struct{}

func (panickingAdapter) Platform() models.Platform { return "broken" }

func (panickingAdapter) FetchMentors(context.Context, models.MentorFilters) []*models.Mentor {
	panic("boom")
}
