package platforms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/getmentor/mentor-aggregator/internal/models"
	"github.com/getmentor/mentor-aggregator/pkg/calcom"
	apperrors "github.com/getmentor/mentor-aggregator/pkg/errors"
	"github.com/getmentor/mentor-aggregator/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalComBackend(t *testing.T, handler http.HandlerFunc) *CalComBackend {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := calcom.NewClient(srv.URL, "cal-key", httpclient.NewStandardClient(time.Second))
	return NewCalComBackend(client, Options{Production: true, Now: fixedClock})
}

func TestCalComBackend_GetAvailability(t *testing.T) {
	backend := newCalComBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/event-types":
			assert.Equal(t, "elena", r.URL.Query().Get("username"))
			assert.Equal(t, "coaching", r.URL.Query().Get("eventSlug"))
			_, _ = w.Write([]byte(`{"status":"success","data":[{"id":12,"slug":"coaching"}]}`))
		case "/v2/slots":
			assert.Equal(t, "12", r.URL.Query().Get("eventTypeId"))
			_, _ = w.Write([]byte(`{"status":"success","data":{
				"2026-05-06":[{"start":"2026-05-06T09:00:00Z"}],
				"2026-05-05":[{"start":"2026-05-05T15:00:00Z"},{"start":"2026-05-05T09:00:00Z"}]
			}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	availability := backend.GetAvailability(context.Background(), "independent-elena", "https://cal.com/elena/coaching")

	require.True(t, availability.Available)
	require.Len(t, availability.Slots, 3)
	for i := 1; i < len(availability.Slots); i++ {
		assert.True(t, availability.Slots[i-1].Before(availability.Slots[i]))
	}
}

func TestCalComBackend_GetAvailability_FallbackOnError(t *testing.T) {
	backend := newCalComBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	availability := backend.GetAvailability(context.Background(), "x", "https://cal.com/elena")

	assert.Equal(t, MockAvailability(testNow), availability)
}

func TestCalComBackend_Book(t *testing.T) {
	slot := time.Date(2026, 5, 5, 9, 0, 0, 0, time.UTC)

	backend := newCalComBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/event-types":
			_, _ = w.Write([]byte(`{"status":"success","data":[{"id":12,"slug":"intro"}]}`))
		case "/v2/bookings":
			var req calcom.BookingRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, 12, req.EventTypeID)
			assert.Equal(t, "UTC", req.Attendee.TimeZone)
			assert.Equal(t, "mentorcruise-1042", req.Metadata["mentorId"])
			_, _ = w.Write([]byte(`{"status":"success","data":{"id":5,"uid":"bk-uid","status":"accepted",
				"meetingUrl":"https://app.cal.com/video/bk-uid"}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	mentor := &models.Mentor{ID: "mentorcruise-1042", Name: "David", BookingURL: "https://cal.com/david/intro"}
	result, err := backend.Book(context.Background(), mentor, models.ScheduleMeetingRequest{
		TimeSlot: slot,
		User:     models.UserDetails{Name: "Jo", Email: "jo@example.com"},
	})

	require.NoError(t, err)
	assert.Equal(t, "bk-uid", result.MeetingID)
	assert.Equal(t, "https://app.cal.com/video/bk-uid", result.MeetingURL)
	assert.Equal(t, models.ModeLive, result.Mode)
}

func TestCalComBackend_TeamLink(t *testing.T) {
	var hits atomic.Int32
	backend := newCalComBackend(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	})
	ctx := context.Background()

	availability := backend.GetAvailability(ctx, "x", "https://cal.com/team/acme/intro")
	assert.Equal(t, MockAvailability(testNow), availability)

	mentor := &models.Mentor{ID: "mentorcruise-1", BookingURL: "https://cal.com/team/acme/intro"}
	_, err := backend.Book(ctx, mentor, models.ScheduleMeetingRequest{TimeSlot: testNow.Add(time.Hour)})
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedOperation)

	assert.Equal(t, int32(0), hits.Load())
}

func TestCalendarRouter(t *testing.T) {
	var calcomHits, calendlyHits atomic.Int32
	calcomBackend := newCalComBackend(t, func(w http.ResponseWriter, r *http.Request) {
		calcomHits.Add(1)
		_, _ = w.Write([]byte(`{"status":"success","data":[]}`))
	})
	calendlyBackend := newCalendlyBackend(t, func(w http.ResponseWriter, r *http.Request) {
		calendlyHits.Add(1)
		_, _ = w.Write([]byte(`{"collection":[]}`))
	})
	router := NewCalendarRouter(calendlyBackend, calcomBackend)

	router.GetAvailability(context.Background(), "a", "https://cal.com/elena")
	assert.EqualValues(t, 1, calcomHits.Load())
	assert.EqualValues(t, 0, calendlyHits.Load())

	router.GetAvailability(context.Background(), "b", "https://calendly.com/jane")
	router.GetAvailability(context.Background(), "c", "https://example.com/jane")
	router.GetAvailability(context.Background(), "d", "https://mentor.example.com/book?via=cal.com")
	assert.EqualValues(t, 1, calcomHits.Load())
	assert.EqualValues(t, 3, calendlyHits.Load())
}
