package platforms

import (
	"context"
	"fmt"
	"time"

	"github.com/getmentor/mentor-aggregator/internal/models"
	"github.com/getmentor/mentor-aggregator/pkg/calendly"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const calendlyPlatform = "calendly"

// CalendlyBackend reads availability from and books meetings on Calendly
type CalendlyBackend struct {
	client *calendly.Client
	opts   Options

	breaker *gobreaker.CircuitBreaker
}

// NewCalendlyBackend creates the Calendly backend. A nil client keeps it in mock mode.
func NewCalendlyBackend(client *calendly.Client, opts Options) *CalendlyBackend {
	return &CalendlyBackend{
		client:  client,
		opts:    opts,
		breaker: newBreaker(calendlyPlatform),
	}
}

func (b *CalendlyBackend) live() bool {
	return b.opts.Production && b.client != nil
}

func (b *CalendlyBackend) eventType(ctx context.Context, bookingURL string) (*calendly.EventType, error) {
	link := models.ParseBookingLink(bookingURL)
	if link.Account == "" {
		return nil, nil
	}

	var eventType *calendly.EventType
	err := call(ctx, b.breaker, calendlyPlatform, "get_event_types", func(ctx context.Context) error {
		var err error
		eventType, err = b.client.FindEventType(ctx, link.Account, link.Event)
		return err
	})
	return eventType, err
}

// GetAvailability lists open start times for the next week
func (b *CalendlyBackend) GetAvailability(ctx context.Context, mentorID, bookingURL string) models.Availability {
	now := b.opts.now()
	if !b.live() {
		recordFallback(calendlyPlatform, "get_availability", "not_live", zap.String("mentor_id", mentorID))
		return MockAvailability(now)
	}

	eventType, err := b.eventType(ctx, bookingURL)
	if err != nil {
		recordFallback(calendlyPlatform, "get_availability", "upstream_error", zap.String("mentor_id", mentorID), zap.Error(err))
		return MockAvailability(now)
	}
	if eventType == nil {
		return UnavailableAvailability()
	}

	var times []calendly.AvailableTime
	err = call(ctx, b.breaker, calendlyPlatform, "get_available_times", func(ctx context.Context) error {
		var err error
		times, err = b.client.AvailableTimes(ctx, eventType.URI, now, now.Add(AvailabilityWindow))
		return err
	})
	if err != nil {
		recordFallback(calendlyPlatform, "get_availability", "upstream_error", zap.String("mentor_id", mentorID), zap.Error(err))
		return MockAvailability(now)
	}

	slots := make([]time.Time, 0, len(times))
	for _, t := range times {
		if t.Status != "" && t.Status != "available" {
			continue
		}
		slots = append(slots, t.StartTime)
	}
	if len(slots) == 0 {
		return UnavailableAvailability()
	}

	return models.Availability{Available: true, Slots: models.SortedSlots(slots)}
}

// Book creates an invitee on the mentor's Calendly event type
func (b *CalendlyBackend) Book(ctx context.Context, mentor *models.Mentor, req models.ScheduleMeetingRequest) (*models.BookingResult, error) {
	if !b.live() {
		return MockBooking(mentor, req.TimeSlot), nil
	}

	eventType, err := b.eventType(ctx, mentor.BookingURL)
	if err != nil {
		return nil, err
	}
	if eventType == nil {
		return nil, fmt.Errorf("no active calendly event type for %s", mentor.BookingURL)
	}

	var booking *calendly.Booking
	err = call(ctx, b.breaker, calendlyPlatform, "create_invitee", func(ctx context.Context) error {
		var err error
		booking, err = b.client.CreateInvitee(ctx, calendly.InviteeRequest{
			EventType: eventType.URI,
			StartTime: req.TimeSlot.UTC(),
			Invitee: calendly.Invitee{
				Name:     req.User.Name,
				Email:    req.User.Email,
				Timezone: req.User.TimezoneOrUTC(),
			},
			Notes: req.User.Notes,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &models.BookingResult{
		Success:       true,
		MeetingID:     booking.ID(),
		MeetingURL:    firstNonEmpty(booking.Location.JoinURL, booking.RescheduleURL, eventType.SchedulingURL, mentor.BookingURL),
		ScheduledTime: req.TimeSlot,
		Mentor:        mentor,
		Message:       fmt.Sprintf("Meeting scheduled with %s", mentor.Name),
		Mode:          models.ModeLive,
	}, nil
}
