package platforms

import (
	"context"
	"fmt"
	"time"

	"github.com/getmentor/mentor-aggregator/internal/models"
	"github.com/getmentor/mentor-aggregator/pkg/mentorcruise"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	mentorcruiseProfileBase    = "https://mentorcruise.com/mentor/"
	mentorcruiseSessionType    = "Monthly Mentorship"
	mentorcruiseResponseWindow = "Within 24 hours"
)

// MentorCruiseAdapter lists MentorCruise mentors, books them through Cal.com
// and relays messages through the MentorCruise API.
type MentorCruiseAdapter struct {
	client  *mentorcruise.Client
	booking *CalComBackend
	opts    Options

	breaker *gobreaker.CircuitBreaker
}

// NewMentorCruiseAdapter creates the adapter. A nil client keeps it on fallback data.
func NewMentorCruiseAdapter(client *mentorcruise.Client, booking *CalComBackend, opts Options) *MentorCruiseAdapter {
	return &MentorCruiseAdapter{
		client:  client,
		booking: booking,
		opts:    opts,
		breaker: newBreaker(string(models.PlatformMentorCruise)),
	}
}

// Platform implements Adapter
func (a *MentorCruiseAdapter) Platform() models.Platform {
	return models.PlatformMentorCruise
}

func (a *MentorCruiseAdapter) live() bool {
	return a.opts.Production && a.client != nil
}

// FetchMentors implements Adapter
func (a *MentorCruiseAdapter) FetchMentors(ctx context.Context, filters models.MentorFilters) []*models.Mentor {
	platform := string(models.PlatformMentorCruise)
	if !a.live() {
		recordFallback(platform, "list_mentors", "not_live")
		return FallbackMentorsFor(models.PlatformMentorCruise, a.opts.now())
	}

	var raw []mentorcruise.Mentor
	err := call(ctx, a.breaker, platform, "list_mentors", func(ctx context.Context) error {
		var err error
		raw, err = a.client.ListMentors(ctx, mentorcruise.ListParams{
			Skills:        filters.Expertise,
			Country:       filters.Location,
			OnlyAvailable: filters.OnlyAvailable(),
		})
		return err
	})
	if err != nil {
		recordFallback(platform, "list_mentors", "upstream_error", zap.Error(err))
		return FallbackMentorsFor(models.PlatformMentorCruise, a.opts.now())
	}

	now := a.opts.now()
	mentors := make([]*models.Mentor, 0, len(raw))
	for i := range raw {
		mentors = append(mentors, transformMentorCruise(&raw[i], now))
	}
	return mentors
}

// ScheduleMeeting implements Scheduler
func (a *MentorCruiseAdapter) ScheduleMeeting(ctx context.Context, mentor *models.Mentor, req models.ScheduleMeetingRequest) (*models.BookingResult, error) {
	return a.booking.Book(ctx, mentor, req)
}

// SendMessage implements Messenger
func (a *MentorCruiseAdapter) SendMessage(ctx context.Context, mentor *models.Mentor, req models.SendMessageRequest) (*models.MessageResult, error) {
	if !a.live() {
		return MockMessage(mentor), nil
	}

	var receipt *mentorcruise.MessageReceipt
	err := call(ctx, a.breaker, string(models.PlatformMentorCruise), "send_message", func(ctx context.Context) error {
		var err error
		receipt, err = a.client.SendMessage(ctx, mentor.PlatformID, mentorcruise.Message{
			Body:  req.Message,
			Name:  req.User.Name,
			Email: req.User.Email,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &models.MessageResult{
		Success:           true,
		MessageID:         receipt.MessageID,
		Message:           fmt.Sprintf("Message sent to %s", mentor.Name),
		EstimatedResponse: mentor.ResponseTime,
		Mode:              models.ModeLive,
	}, nil
}

// transformMentorCruise maps a raw MentorCruise mentor onto the canonical record.
// Slots at or before now are dropped.
func transformMentorCruise(raw *mentorcruise.Mentor, now time.Time) *models.Mentor {
	nativeID := firstNonEmpty(raw.ID, raw.Slug)

	rating := models.DefaultRating
	if raw.Rating != nil {
		rating = *raw.Rating
	}
	experience := models.DefaultExperienceYears
	if raw.YearsExperience != nil {
		experience = *raw.YearsExperience
	}

	var rate float64
	if raw.PricePerHour != nil {
		rate = *raw.PricePerHour
	}

	sessionTypes := make([]string, 0, len(raw.Plans))
	for _, plan := range raw.Plans {
		if plan.Name != "" {
			sessionTypes = append(sessionTypes, plan.Name)
		}
	}

	status := models.StatusBusy
	if raw.AvailabilityStatus == string(models.StatusAvailable) {
		status = models.StatusAvailable
	}

	slots := models.UpcomingSlots(raw.Slots, now)

	return &models.Mentor{
		ID:              models.MentorID(models.PlatformMentorCruise, nativeID),
		Platform:        models.PlatformMentorCruise,
		PlatformID:      nativeID,
		Name:            raw.FullName(),
		Title:           raw.JobTitle,
		Company:         raw.Company,
		Location:        raw.Country,
		AvatarURL:       raw.ProfileImage,
		Bio:             raw.About,
		Languages:       orDefault(raw.Languages, models.DefaultLanguages()),
		ExperienceYears: experience,
		Expertise:       orEmpty(raw.Skills),
		Specializations: orEmpty(raw.Categories),
		Rating:          models.ClampRating(rating),
		ReviewCount:     raw.ReviewsCount,
		MenteeCount:     raw.MenteeCount,
		HourlyRate:      rate,
		SessionTypes:    orDefault(sessionTypes, []string{mentorcruiseSessionType}),
		ResponseTime:    firstNonEmpty(raw.ResponseTime, mentorcruiseResponseWindow),
		Availability:    status,
		NextAvailable:   nextSlot(raw.NextSlot, slots, now),
		AvailableSlots:  slots,
		BookingURL:      raw.CalendarURL,
		ProfileURL:      firstNonEmpty(raw.URL, mentorcruiseProfileBase+firstNonEmpty(raw.Slug, nativeID)+"/"),
	}
}

var (
	_ Adapter   = (*MentorCruiseAdapter)(nil)
	_ Scheduler = (*MentorCruiseAdapter)(nil)
	_ Messenger = (*MentorCruiseAdapter)(nil)
)
