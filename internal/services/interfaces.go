package services

import (
	"context"

	"github.com/getmentor/mentor-aggregator/internal/models"
)

// MentorServiceInterface defines the interface for mentor service operations
type MentorServiceInterface interface {
	GetAllMentors(ctx context.Context, filters models.MentorFilters) []*models.Mentor
	GetMentorByID(ctx context.Context, id string) (*models.Mentor, error)
}

// BookingServiceInterface defines the interface for availability and booking operations
type BookingServiceInterface interface {
	GetMentorAvailability(ctx context.Context, mentorID, bookingURL string) (*models.Availability, error)
	ScheduleMeeting(ctx context.Context, mentorID string, req models.ScheduleMeetingRequest) (*models.BookingResult, error)
}

// MessageServiceInterface defines the interface for mentor messaging
type MessageServiceInterface interface {
	SendMessageToMentor(ctx context.Context, mentorID string, req models.SendMessageRequest) (*models.MessageResult, error)
}

// Ensure services implement their interfaces
var _ MentorServiceInterface = (*MentorService)(nil)
var _ BookingServiceInterface = (*BookingService)(nil)
var _ MessageServiceInterface = (*MessageService)(nil)
var _ MentorLookup = (*MentorService)(nil)
