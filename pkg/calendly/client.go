// Package calendly is a minimal client for the Calendly v2 API: event type
// lookup, available times and invitee booking.
package calendly

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/getmentor/mentor-aggregator/pkg/httpclient"
)

// MaxAvailabilityWindow is the longest range Calendly accepts for available times
const MaxAvailabilityWindow = 7 * 24 * time.Hour

// EventType is a bookable Calendly event type
type EventType struct {
	URI           string `json:"uri"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Active        bool   `json:"active"`
	SchedulingURL string `json:"scheduling_url"`
	Duration      int    `json:"duration"`
}

// AvailableTime is one open start time of an event type
type AvailableTime struct {
	Status        string    `json:"status"`
	StartTime     time.Time `json:"start_time"`
	SchedulingURL string    `json:"scheduling_url"`
}

// Invitee identifies the person being booked
type Invitee struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Timezone string `json:"timezone"`
}

// InviteeRequest books a time on an event type
type InviteeRequest struct {
	EventType string    `json:"event_type"`
	StartTime time.Time `json:"start_time"`
	Invitee   Invitee   `json:"invitee"`
	Notes     string    `json:"notes,omitempty"`
}

// Location is where a booked meeting takes place
type Location struct {
	Type    string `json:"type"`
	JoinURL string `json:"join_url"`
}

// Booking is the invitee resource created by a booking
type Booking struct {
	URI           string    `json:"uri"`
	Status        string    `json:"status"`
	Event         string    `json:"event"`
	StartTime     time.Time `json:"start_time"`
	RescheduleURL string    `json:"reschedule_url"`
	Location      Location  `json:"location"`
}

// ID returns the trailing identifier of the booking URI
func (b Booking) ID() string {
	if b.URI == "" {
		return ""
	}
	return path.Base(b.URI)
}

type collection[T any] struct {
	Collection []T `json:"collection"`
}

type resource[T any] struct {
	Resource T `json:"resource"`
}

// Client talks to the Calendly API with a personal access token
type Client struct {
	baseURL    string
	token      string
	httpClient httpclient.Client
}

// NewClient creates a Calendly client
func NewClient(baseURL, token string, httpClient httpclient.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

func (c *Client) headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + c.token}
}

// FindEventType returns the active event type of user matching slug, or the
// first active one when slug is empty or unmatched. It returns nil when the
// user has no active event types.
func (c *Client) FindEventType(ctx context.Context, user, slug string) (*EventType, error) {
	var resp collection[EventType]
	err := httpclient.DoJSON(ctx, c.httpClient, httpclient.Request{
		URL:     c.baseURL + "/event_types",
		Query:   url.Values{"user": {user}, "active": {"true"}},
		Headers: c.headers(),
	}, &resp)
	if err != nil {
		return nil, err
	}

	var first *EventType
	for i := range resp.Collection {
		et := &resp.Collection[i]
		if !et.Active {
			continue
		}
		if slug != "" && strings.EqualFold(et.Slug, slug) {
			return et, nil
		}
		if first == nil {
			first = et
		}
	}
	return first, nil
}

// AvailableTimes lists open start times of an event type between start and end
func (c *Client) AvailableTimes(ctx context.Context, eventTypeURI string, start, end time.Time) ([]AvailableTime, error) {
	var resp collection[AvailableTime]
	err := httpclient.DoJSON(ctx, c.httpClient, httpclient.Request{
		URL: c.baseURL + "/event_type_available_times",
		Query: url.Values{
			"event_type": {eventTypeURI},
			"start_time": {start.UTC().Format(time.RFC3339)},
			"end_time":   {end.UTC().Format(time.RFC3339)},
		},
		Headers: c.headers(),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Collection, nil
}

// CreateInvitee books req.StartTime on the event type for the invitee
func (c *Client) CreateInvitee(ctx context.Context, req InviteeRequest) (*Booking, error) {
	var resp resource[Booking]
	err := httpclient.DoJSON(ctx, c.httpClient, httpclient.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/invitees",
		Headers: c.headers(),
		Body:    req,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Resource, nil
}
