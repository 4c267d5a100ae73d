// Package adplist is a minimal client for the ADPList mentor directory API.
package adplist

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/getmentor/mentor-aggregator/pkg/httpclient"
)

// Mentor is a mentor as returned by ADPList. Optional numbers are pointers so
// callers can tell a missing value from zero.
type Mentor struct {
	ID                string      `json:"id"`
	Slug              string      `json:"slug"`
	Name              string      `json:"name"`
	Headline          string      `json:"headline"`
	Employer          string      `json:"employer"`
	Location          string      `json:"location"`
	ProfilePhotoURL   string      `json:"profile_photo_url"`
	Bio               string      `json:"bio"`
	Expertise         []string    `json:"expertise"`
	Topics            []string    `json:"topics"`
	Languages         []string    `json:"languages"`
	AverageRating     *float64    `json:"average_rating"`
	TotalReviews      int         `json:"total_reviews"`
	TotalMentees      int         `json:"total_mentees"`
	YearsOfExperience *int        `json:"years_of_experience"`
	SessionTypes      []string    `json:"session_types"`
	ResponseTime      string      `json:"response_time"`
	IsAvailable       bool        `json:"is_available"`
	NextAvailableAt   *time.Time  `json:"next_available_at"`
	AvailableSlots    []time.Time `json:"available_slots"`
	BookingURL        string      `json:"booking_url"`
	ProfileURL        string      `json:"profile_url"`
}

type listResponse struct {
	Mentors []Mentor `json:"mentors"`
}

// ListParams narrows the mentor search. Empty fields are not sent.
type ListParams struct {
	Expertise     string
	Location      string
	OnlyAvailable bool
}

// Message is a direct message to a mentor
type Message struct {
	MentorID    string `json:"mentor_id"`
	Content     string `json:"content"`
	SenderName  string `json:"sender_name"`
	SenderEmail string `json:"sender_email"`
}

// MessageReceipt acknowledges a delivered message
type MessageReceipt struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Client talks to the ADPList API with a bearer token
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpclient.Client
}

// NewClient creates an ADPList client
func NewClient(baseURL, apiKey string, httpClient httpclient.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (c *Client) headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + c.apiKey}
}

// ListMentors searches the mentor directory
func (c *Client) ListMentors(ctx context.Context, params ListParams) ([]Mentor, error) {
	query := url.Values{}
	if params.Expertise != "" {
		query.Set("expertise", params.Expertise)
	}
	if params.Location != "" {
		query.Set("location", params.Location)
	}
	if params.OnlyAvailable {
		query.Set("available", "true")
	}

	var resp listResponse
	err := httpclient.DoJSON(ctx, c.httpClient, httpclient.Request{
		URL:     c.baseURL + "/mentors",
		Query:   query,
		Headers: c.headers(),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Mentors, nil
}

// SendMessage delivers a message to a mentor's inbox
func (c *Client) SendMessage(ctx context.Context, msg Message) (*MessageReceipt, error) {
	var receipt MessageReceipt
	err := httpclient.DoJSON(ctx, c.httpClient, httpclient.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/messages",
		Headers: c.headers(),
		Body:    msg,
	}, &receipt)
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}
