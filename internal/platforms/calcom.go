package platforms

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/getmentor/mentor-aggregator/internal/models"
	"github.com/getmentor/mentor-aggregator/pkg/calcom"
	apperrors "github.com/getmentor/mentor-aggregator/pkg/errors"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const calcomPlatform = "calcom"

// CalComBackend reads availability from and books meetings on Cal.com
type CalComBackend struct {
	client *calcom.Client
	opts   Options

	breaker *gobreaker.CircuitBreaker
}

// NewCalComBackend creates the Cal.com backend. A nil client keeps it in mock mode.
func NewCalComBackend(client *calcom.Client, opts Options) *CalComBackend {
	return &CalComBackend{
		client:  client,
		opts:    opts,
		breaker: newBreaker(calcomPlatform),
	}
}

func (b *CalComBackend) live() bool {
	return b.opts.Production && b.client != nil
}

func (b *CalComBackend) eventType(ctx context.Context, bookingURL string) (*calcom.EventType, error) {
	link := models.ParseBookingLink(bookingURL)
	if link.Team {
		return nil, apperrors.UnsupportedOperationError(calcomPlatform, "team booking pages")
	}
	if link.Account == "" {
		return nil, nil
	}

	var eventType *calcom.EventType
	err := call(ctx, b.breaker, calcomPlatform, "get_event_types", func(ctx context.Context) error {
		var err error
		eventType, err = b.client.FindEventType(ctx, link.Account, link.Event)
		return err
	})
	return eventType, err
}

// GetAvailability lists open start times for the next week
func (b *CalComBackend) GetAvailability(ctx context.Context, mentorID, bookingURL string) models.Availability {
	now := b.opts.now()
	if !b.live() {
		recordFallback(calcomPlatform, "get_availability", "not_live", zap.String("mentor_id", mentorID))
		return MockAvailability(now)
	}

	eventType, err := b.eventType(ctx, bookingURL)
	if err != nil {
		recordFallback(calcomPlatform, "get_availability", fallbackReason(err), zap.String("mentor_id", mentorID), zap.Error(err))
		return MockAvailability(now)
	}
	if eventType == nil {
		return UnavailableAvailability()
	}

	var slots []time.Time
	err = call(ctx, b.breaker, calcomPlatform, "get_slots", func(ctx context.Context) error {
		var err error
		slots, err = b.client.Slots(ctx, eventType.ID, now, now.Add(AvailabilityWindow))
		return err
	})
	if err != nil {
		recordFallback(calcomPlatform, "get_availability", "upstream_error", zap.String("mentor_id", mentorID), zap.Error(err))
		return MockAvailability(now)
	}
	if len(slots) == 0 {
		return UnavailableAvailability()
	}

	return models.Availability{Available: true, Slots: models.SortedSlots(slots)}
}

// Book creates a Cal.com booking on the mentor's event type
func (b *CalComBackend) Book(ctx context.Context, mentor *models.Mentor, req models.ScheduleMeetingRequest) (*models.BookingResult, error) {
	if !b.live() {
		return MockBooking(mentor, req.TimeSlot), nil
	}

	eventType, err := b.eventType(ctx, mentor.BookingURL)
	if err != nil {
		return nil, err
	}
	if eventType == nil {
		return nil, fmt.Errorf("no cal.com event type for %s", mentor.BookingURL)
	}

	var booking *calcom.Booking
	err = call(ctx, b.breaker, calcomPlatform, "create_booking", func(ctx context.Context) error {
		var err error
		booking, err = b.client.CreateBooking(ctx, calcom.BookingRequest{
			Start:       req.TimeSlot.UTC(),
			EventTypeID: eventType.ID,
			Attendee: calcom.Attendee{
				Name:     req.User.Name,
				Email:    req.User.Email,
				TimeZone: req.User.TimezoneOrUTC(),
			},
			Metadata: map[string]string{"mentorId": mentor.ID},
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &models.BookingResult{
		Success:       true,
		MeetingID:     firstNonEmpty(booking.UID, strconv.Itoa(booking.ID)),
		MeetingURL:    firstNonEmpty(booking.MeetingURL, mentor.BookingURL),
		ScheduledTime: req.TimeSlot,
		Mentor:        mentor,
		Message:       fmt.Sprintf("Meeting scheduled with %s", mentor.Name),
		Mode:          models.ModeLive,
	}, nil
}
