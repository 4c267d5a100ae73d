// Package platforms adapts external mentor marketplaces and scheduling
// providers to the canonical models.Mentor and booking results.
//
// Every adapter follows the same failure policy: upstream errors are logged,
// counted and replaced with deterministic fallback data. Only the services
// layer decides whether an error reaches the caller.
package platforms

import (
	"context"
	"time"

	"github.com/getmentor/mentor-aggregator/internal/models"
	"github.com/getmentor/mentor-aggregator/pkg/circuitbreaker"
	apperrors "github.com/getmentor/mentor-aggregator/pkg/errors"
	"github.com/getmentor/mentor-aggregator/pkg/logger"
	"github.com/getmentor/mentor-aggregator/pkg/metrics"
	"github.com/getmentor/mentor-aggregator/pkg/tracing"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Adapter is one mentor marketplace
type Adapter interface {
	Platform() models.Platform
	// FetchMentors never fails: on any upstream problem it returns the
	// platform's fallback mentors.
	FetchMentors(ctx context.Context, filters models.MentorFilters) []*models.Mentor
}

// Scheduler is implemented by adapters that can book meetings
type Scheduler interface {
	ScheduleMeeting(ctx context.Context, mentor *models.Mentor, req models.ScheduleMeetingRequest) (*models.BookingResult, error)
}

// Messenger is implemented by adapters that can deliver messages
type Messenger interface {
	SendMessage(ctx context.Context, mentor *models.Mentor, req models.SendMessageRequest) (*models.MessageResult, error)
}

// AvailabilityProvider resolves bookable slots from a booking page URL
type AvailabilityProvider interface {
	GetAvailability(ctx context.Context, mentorID, bookingURL string) models.Availability
}

// Options carries the runtime mode shared by all adapters
type Options struct {
	// Production enables real upstream calls; otherwise fallback data is served
	Production bool
	// Now is the clock used for fallback timestamps and availability windows
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now().UTC()
}

// call runs one upstream operation through the platform's breaker with
// tracing, metrics and an API call log line. Errors come back wrapped as
// upstream failures.
func call(ctx context.Context, breaker *gobreaker.CircuitBreaker, platform, operation string, fn func(ctx context.Context) error) error {
	ctx, span := tracing.StartSpan(ctx, "platform."+operation,
		attribute.String("platform", platform),
		attribute.String("operation", operation),
	)
	start := time.Now()

	err := circuitbreaker.Run(breaker, func() error { return fn(ctx) })

	metrics.ObservePlatformCall(platform, operation, start, err)
	status := "success"
	fields := []zap.Field{}
	switch {
	case circuitbreaker.IsOpen(err):
		status = "circuit_open"
		fields = append(fields, zap.Error(err))
	case err != nil:
		status = "error"
		fields = append(fields, zap.Error(err))
	}
	logger.LogAPICall(ctx, platform, operation, status, metrics.MeasureDuration(start), fields...)
	tracing.EndSpan(span, err)

	if err != nil {
		return apperrors.UpstreamError(platform, operation, err)
	}
	return nil
}

// recordFallback notes that fallback data replaced a real answer
func recordFallback(platform, operation, reason string, fields ...zap.Field) {
	metrics.FallbackResponses.WithLabelValues(platform, operation, reason).Inc()
	fields = append([]zap.Field{
		zap.String("platform", platform),
		zap.String("operation", operation),
		zap.String("reason", reason),
	}, fields...)
	logger.Debug("Serving fallback data", fields...)
}

// fallbackReason labels why a lookup fell back
func fallbackReason(err error) string {
	if apperrors.Is(err, apperrors.ErrUnsupportedOperation) {
		return "unsupported"
	}
	return "upstream_error"
}

// orEmpty keeps JSON output as [] rather than null
func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func orDefault(values []string, def []string) []string {
	if len(values) == 0 {
		return def
	}
	return values
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// nextSlot returns the explicit next slot if it is still ahead of now,
// otherwise the earliest of slots
func nextSlot(explicit *time.Time, slots []time.Time, now time.Time) *time.Time {
	if explicit != nil && explicit.After(now) {
		t := *explicit
		return &t
	}
	if len(slots) > 0 {
		t := slots[0]
		return &t
	}
	return nil
}

func newBreaker(platform string) *gobreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.DefaultConfig(platform))
}
