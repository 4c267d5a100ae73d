package services

import (
	"context"

	"github.com/getmentor/mentor-aggregator/internal/models"
	"github.com/getmentor/mentor-aggregator/internal/platforms"
	"github.com/getmentor/mentor-aggregator/pkg/logger"
	"github.com/getmentor/mentor-aggregator/pkg/metrics"
	"github.com/getmentor/mentor-aggregator/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// MentorLookup resolves a mentor by its aggregated id
type MentorLookup interface {
	GetMentorByID(ctx context.Context, id string) (*models.Mentor, error)
}

// BookingService reads mentor availability and books meetings
type BookingService struct {
	mentors      MentorLookup
	registry     *platforms.Registry
	availability platforms.AvailabilityProvider
	opts         Options
}

// NewBookingService creates a new booking service instance
func NewBookingService(
	mentors MentorLookup,
	registry *platforms.Registry,
	availability platforms.AvailabilityProvider,
	opts Options,
) *BookingService {
	return &BookingService{
		mentors:      mentors,
		registry:     registry,
		availability: availability,
		opts:         opts,
	}
}

// GetMentorAvailability returns the open slots behind bookingURL. When
// bookingURL is empty the mentor's own booking URL is used.
func (s *BookingService) GetMentorAvailability(ctx context.Context, mentorID, bookingURL string) (*models.Availability, error) {
	if bookingURL == "" {
		mentor, err := s.mentors.GetMentorByID(ctx, mentorID)
		if err != nil {
			return nil, err
		}
		bookingURL = mentor.BookingURL
	}

	availability := s.availability.GetAvailability(ctx, mentorID, bookingURL)
	return &availability, nil
}

// ScheduleMeeting books slot with the mentor. Only an unknown mentor is an
// error; every booking failure turns into a fallback confirmation.
func (s *BookingService) ScheduleMeeting(ctx context.Context, mentorID string, req models.ScheduleMeetingRequest) (*models.BookingResult, error) {
	mentor, err := s.mentors.GetMentorByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "booking.schedule",
		attribute.String("mentor.id", mentor.ID),
		attribute.String("mentor.platform", string(mentor.Platform)),
	)
	defer span.End()

	var result *models.BookingResult
	if !s.opts.Production || mentor.BookingURL == "" {
		result = platforms.MockBooking(mentor, req.TimeSlot)
	} else {
		result, err = s.book(ctx, mentor, req)
		if err != nil {
			logger.Warn("Meeting booking failed, returning fallback confirmation",
				zap.String("mentor_id", mentor.ID),
				zap.String("platform", string(mentor.Platform)),
				zap.Error(err))
			metrics.FallbackResponses.WithLabelValues(string(mentor.Platform), "schedule_meeting", "booking_failed").Inc()
			result = platforms.FallbackBooking(mentor, req.TimeSlot)
		}
	}

	metrics.MeetingBookings.WithLabelValues(string(mentor.Platform), string(result.Mode)).Inc()
	logger.Info("Meeting scheduled",
		zap.String("mentor_id", mentor.ID),
		zap.String("mode", string(result.Mode)),
		zap.String("env", modeLabel(s.opts.Production)))
	return result, nil
}

func (s *BookingService) book(ctx context.Context, mentor *models.Mentor, req models.ScheduleMeetingRequest) (*models.BookingResult, error) {
	scheduler, err := s.registry.Scheduler(mentor.Platform)
	if err != nil {
		return nil, err
	}
	return scheduler.ScheduleMeeting(ctx, mentor, req)
}
