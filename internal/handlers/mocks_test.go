package handlers

import (
	"context"

	"github.com/getmentor/mentor-aggregator/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockMentorService struct {
	mock.Mock
}

func (m *MockMentorService) GetAllMentors(ctx context.Context, filters models.MentorFilters) []*models.Mentor {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*models.Mentor)
}

func (m *MockMentorService) GetMentorByID(ctx context.Context, id string) (*models.Mentor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mentor), args.Error(1)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetMentorAvailability(ctx context.Context, mentorID, bookingURL string) (*models.Availability, error) {
	args := m.Called(ctx, mentorID, bookingURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Availability), args.Error(1)
}

func (m *MockBookingService) ScheduleMeeting(ctx context.Context, mentorID string, req models.ScheduleMeetingRequest) (*models.BookingResult, error) {
	args := m.Called(ctx, mentorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResult), args.Error(1)
}

type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) SendMessageToMentor(ctx context.Context, mentorID string, req models.SendMessageRequest) (*models.MessageResult, error) {
	args := m.Called(ctx, mentorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MessageResult), args.Error(1)
}
