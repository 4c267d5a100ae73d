// Package calcom is a minimal client for the Cal.com v2 API.
package calcom

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/getmentor/mentor-aggregator/pkg/httpclient"
)

// Cal.com versions each endpoint family separately
const (
	eventTypesAPIVersion = "2024-06-14"
	slotsAPIVersion      = "2024-09-04"
	bookingsAPIVersion   = "2024-08-13"
)

// EventType is a bookable Cal.com event type
type EventType struct {
	ID              int    `json:"id"`
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	LengthInMinutes int    `json:"lengthInMinutes"`
}

// Attendee is the person being booked
type Attendee struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	TimeZone string `json:"timeZone"`
}

// BookingRequest books a start time on an event type
type BookingRequest struct {
	Start       time.Time         `json:"start"`
	EventTypeID int               `json:"eventTypeId"`
	Attendee    Attendee          `json:"attendee"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Booking is a created Cal.com booking
type Booking struct {
	ID         int       `json:"id"`
	UID        string    `json:"uid"`
	Status     string    `json:"status"`
	Start      time.Time `json:"start"`
	MeetingURL string    `json:"meetingUrl"`
}

type envelope[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

type slot struct {
	Start time.Time `json:"start"`
}

// Client talks to the Cal.com API with an API key
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpclient.Client
}

// NewClient creates a Cal.com client
func NewClient(baseURL, apiKey string, httpClient httpclient.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (c *Client) headers(version string) map[string]string {
	return map[string]string{
		"Authorization":   "Bearer " + c.apiKey,
		"cal-api-version": version,
	}
}

// FindEventType returns the event type of username with slug (or the first one
// when slug is empty). It returns nil when nothing matches.
func (c *Client) FindEventType(ctx context.Context, username, slug string) (*EventType, error) {
	query := url.Values{"username": {username}}
	if slug != "" {
		query.Set("eventSlug", slug)
	}

	var resp envelope[[]EventType]
	err := httpclient.DoJSON(ctx, c.httpClient, httpclient.Request{
		URL:     c.baseURL + "/v2/event-types",
		Query:   query,
		Headers: c.headers(eventTypesAPIVersion),
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return &resp.Data[0], nil
}

// Slots lists open start times of an event type between start and end, in time order
func (c *Client) Slots(ctx context.Context, eventTypeID int, start, end time.Time) ([]time.Time, error) {
	var resp envelope[map[string][]slot]
	err := httpclient.DoJSON(ctx, c.httpClient, httpclient.Request{
		URL: c.baseURL + "/v2/slots",
		Query: url.Values{
			"eventTypeId": {strconv.Itoa(eventTypeID)},
			"start":       {start.UTC().Format(time.RFC3339)},
			"end":         {end.UTC().Format(time.RFC3339)},
		},
		Headers: c.headers(slotsAPIVersion),
	}, &resp)
	if err != nil {
		return nil, err
	}

	// Slots come grouped by day
	var times []time.Time
	for _, day := range resp.Data {
		for _, s := range day {
			times = append(times, s.Start)
		}
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	return times, nil
}

// CreateBooking books a meeting
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*Booking, error) {
	var resp envelope[Booking]
	err := httpclient.DoJSON(ctx, c.httpClient, httpclient.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/v2/bookings",
		Headers: c.headers(bookingsAPIVersion),
		Body:    req,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
