package platforms

import (
	"context"
	"fmt"
	"time"

	"github.com/getmentor/mentor-aggregator/internal/models"
	"github.com/getmentor/mentor-aggregator/pkg/adplist"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	adplistProfileBase    = "https://adplist.org/mentors/"
	adplistSessionType    = "1:1 Mentorship"
	adplistResponseWindow = "Within 48 hours"
)

// ADPListAdapter lists ADPList mentors, books them through Calendly and
// relays messages through the ADPList API.
type ADPListAdapter struct {
	client  *adplist.Client
	booking *CalendlyBackend
	opts    Options

	breaker *gobreaker.CircuitBreaker
}

// NewADPListAdapter creates the adapter. A nil client keeps it on fallback data.
func NewADPListAdapter(client *adplist.Client, booking *CalendlyBackend, opts Options) *ADPListAdapter {
	return &ADPListAdapter{
		client:  client,
		booking: booking,
		opts:    opts,
		breaker: newBreaker(string(models.PlatformADPList)),
	}
}

// Platform implements Adapter
func (a *ADPListAdapter) Platform() models.Platform {
	return models.PlatformADPList
}

func (a *ADPListAdapter) live() bool {
	return a.opts.Production && a.client != nil
}

// FetchMentors implements Adapter
func (a *ADPListAdapter) FetchMentors(ctx context.Context, filters models.MentorFilters) []*models.Mentor {
	platform := string(models.PlatformADPList)
	if !a.live() {
		recordFallback(platform, "list_mentors", "not_live")
		return FallbackMentorsFor(models.PlatformADPList, a.opts.now())
	}

	var raw []adplist.Mentor
	err := call(ctx, a.breaker, platform, "list_mentors", func(ctx context.Context) error {
		var err error
		raw, err = a.client.ListMentors(ctx, adplist.ListParams{
			Expertise:     filters.Expertise,
			Location:      filters.Location,
			OnlyAvailable: filters.OnlyAvailable(),
		})
		return err
	})
	if err != nil {
		recordFallback(platform, "list_mentors", "upstream_error", zap.Error(err))
		return FallbackMentorsFor(models.PlatformADPList, a.opts.now())
	}

	now := a.opts.now()
	mentors := make([]*models.Mentor, 0, len(raw))
	for i := range raw {
		mentors = append(mentors, transformADPList(&raw[i], now))
	}
	return mentors
}

// ScheduleMeeting implements Scheduler
func (a *ADPListAdapter) ScheduleMeeting(ctx context.Context, mentor *models.Mentor, req models.ScheduleMeetingRequest) (*models.BookingResult, error) {
	return a.booking.Book(ctx, mentor, req)
}

// SendMessage implements Messenger
func (a *ADPListAdapter) SendMessage(ctx context.Context, mentor *models.Mentor, req models.SendMessageRequest) (*models.MessageResult, error) {
	if !a.live() {
		return MockMessage(mentor), nil
	}

	var receipt *adplist.MessageReceipt
	err := call(ctx, a.breaker, string(models.PlatformADPList), "send_message", func(ctx context.Context) error {
		var err error
		receipt, err = a.client.SendMessage(ctx, adplist.Message{
			MentorID:    mentor.PlatformID,
			Content:     req.Message,
			SenderName:  req.User.Name,
			SenderEmail: req.User.Email,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &models.MessageResult{
		Success:           true,
		MessageID:         receipt.ID,
		Message:           fmt.Sprintf("Message sent to %s", mentor.Name),
		EstimatedResponse: mentor.ResponseTime,
		Mode:              models.ModeLive,
	}, nil
}

// transformADPList maps a raw ADPList mentor onto the canonical record.
// Slots at or before now are dropped.
func transformADPList(raw *adplist.Mentor, now time.Time) *models.Mentor {
	nativeID := firstNonEmpty(raw.ID, raw.Slug)

	rating := models.DefaultRating
	if raw.AverageRating != nil {
		rating = *raw.AverageRating
	}
	experience := models.DefaultExperienceYears
	if raw.YearsOfExperience != nil {
		experience = *raw.YearsOfExperience
	}

	status := models.StatusBusy
	if raw.IsAvailable {
		status = models.StatusAvailable
	}

	slots := models.UpcomingSlots(raw.AvailableSlots, now)

	return &models.Mentor{
		ID:              models.MentorID(models.PlatformADPList, nativeID),
		Platform:        models.PlatformADPList,
		PlatformID:      nativeID,
		Name:            raw.Name,
		Title:           raw.Headline,
		Company:         raw.Employer,
		Location:        raw.Location,
		AvatarURL:       raw.ProfilePhotoURL,
		Bio:             raw.Bio,
		Languages:       orDefault(raw.Languages, models.DefaultLanguages()),
		ExperienceYears: experience,
		Expertise:       orEmpty(raw.Expertise),
		Specializations: orEmpty(raw.Topics),
		Rating:          models.ClampRating(rating),
		ReviewCount:     raw.TotalReviews,
		MenteeCount:     raw.TotalMentees,
		HourlyRate:      0,
		SessionTypes:    orDefault(raw.SessionTypes, []string{adplistSessionType}),
		ResponseTime:    firstNonEmpty(raw.ResponseTime, adplistResponseWindow),
		Availability:    status,
		NextAvailable:   nextSlot(raw.NextAvailableAt, slots, now),
		AvailableSlots:  slots,
		BookingURL:      raw.BookingURL,
		ProfileURL:      firstNonEmpty(raw.ProfileURL, adplistProfileBase+firstNonEmpty(raw.Slug, nativeID)),
	}
}

var (
	_ Adapter   = (*ADPListAdapter)(nil)
	_ Scheduler = (*ADPListAdapter)(nil)
	_ Messenger = (*ADPListAdapter)(nil)
)
