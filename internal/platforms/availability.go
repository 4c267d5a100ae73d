package platforms

import (
	"context"

	"github.com/getmentor/mentor-aggregator/internal/models"
	"github.com/getmentor/mentor-aggregator/pkg/calendly"
)

// AvailabilityWindow is how far ahead availability is looked up
const AvailabilityWindow = calendly.MaxAvailabilityWindow

// CalendarRouter picks the availability backend from the booking URL host.
// Unknown hosts go to Calendly.
type CalendarRouter struct {
	calendly *CalendlyBackend
	calcom   *CalComBackend
}

// NewCalendarRouter creates a router over both calendar backends
func NewCalendarRouter(calendlyBackend *CalendlyBackend, calcomBackend *CalComBackend) *CalendarRouter {
	return &CalendarRouter{calendly: calendlyBackend, calcom: calcomBackend}
}

// GetAvailability implements AvailabilityProvider
func (r *CalendarRouter) GetAvailability(ctx context.Context, mentorID, bookingURL string) models.Availability {
	if models.GetCalendarType(bookingURL) == models.CalendarCalCom {
		return r.calcom.GetAvailability(ctx, mentorID, bookingURL)
	}
	return r.calendly.GetAvailability(ctx, mentorID, bookingURL)
}

var _ AvailabilityProvider = (*CalendarRouter)(nil)
