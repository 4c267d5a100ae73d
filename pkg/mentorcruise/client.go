// Package mentorcruise is a minimal client for the MentorCruise partner API.
package mentorcruise

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/getmentor/mentor-aggregator/pkg/httpclient"
)

// Plan is one of the mentor's paid offerings
type Plan struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Mentor is a mentor as returned by MentorCruise
type Mentor struct {
	ID                 string      `json:"id"`
	Slug               string      `json:"slug"`
	FirstName          string      `json:"first_name"`
	LastName           string      `json:"last_name"`
	JobTitle           string      `json:"job_title"`
	Company            string      `json:"company"`
	Country            string      `json:"country"`
	ProfileImage       string      `json:"profile_image"`
	About              string      `json:"about"`
	Skills             []string    `json:"skills"`
	Categories         []string    `json:"categories"`
	Languages          []string    `json:"languages"`
	Rating             *float64    `json:"rating"`
	ReviewsCount       int         `json:"reviews_count"`
	MenteeCount        int         `json:"mentee_count"`
	YearsExperience    *int        `json:"years_experience"`
	PricePerHour       *float64    `json:"price_per_hour"`
	Plans              []Plan      `json:"plans"`
	ResponseTime       string      `json:"response_time"`
	AvailabilityStatus string      `json:"availability_status"`
	NextSlot           *time.Time  `json:"next_slot"`
	Slots              []time.Time `json:"slots"`
	CalendarURL        string      `json:"calendar_url"`
	URL                string      `json:"url"`
}

// FullName joins first and last name
func (m Mentor) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

type listResponse struct {
	Results []Mentor `json:"results"`
}

// ListParams narrows the mentor search. Empty fields are not sent.
type ListParams struct {
	Skills        string
	Country       string
	OnlyAvailable bool
}

// Message is an application message sent to a mentor
type Message struct {
	Body  string `json:"body"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MessageReceipt acknowledges a delivered message
type MessageReceipt struct {
	MessageID string `json:"message_id"`
}

// Client talks to the MentorCruise API with an API key header
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpclient.Client
}

// NewClient creates a MentorCruise client
func NewClient(baseURL, apiKey string, httpClient httpclient.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (c *Client) headers() map[string]string {
	return map[string]string{"X-API-Key": c.apiKey}
}

// ListMentors searches MentorCruise mentors
func (c *Client) ListMentors(ctx context.Context, params ListParams) ([]Mentor, error) {
	query := url.Values{}
	if params.Skills != "" {
		query.Set("skills", params.Skills)
	}
	if params.Country != "" {
		query.Set("country", params.Country)
	}
	if params.OnlyAvailable {
		query.Set("available_only", "1")
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
	return resp.Results, nil
}

// SendMessage posts a message to the mentor identified by mentorID
func (c *Client) SendMessage(ctx context.Context, mentorID string, msg Message) (*MessageReceipt, error) {
	var receipt MessageReceipt
	err := httpclient.DoJSON(ctx, c.httpClient, httpclient.Request{
		Method:  http.MethodPost,
		URL:     c.baseURL + "/mentors/" + url.PathEscape(mentorID) + "/messages",
		Headers: c.headers(),
		Body:    msg,
	}, &receipt)
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}
