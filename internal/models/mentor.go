package models

import (
	"net/url"
	"sort"
	"strings"
	"time"
)

// Platform identifies the marketplace a mentor record came from
type Platform string

const (
	PlatformADPList      Platform = "adplist"
	PlatformMentorCruise Platform = "mentorcruise"
	// PlatformIndependent marks mentors that only publish a personal booking page
	PlatformIndependent Platform = "independent"
)

// AvailabilityStatus is the coarse availability of a mentor
type AvailabilityStatus string

const (
	StatusAvailable AvailabilityStatus = "available"
	StatusBusy      AvailabilityStatus = "busy"
)

// Calendar service types recognised in booking URLs
const (
	CalendarCalendly = "calendly"
	CalendarCalCom   = "calcom"
	CalendarURL      = "url"
	CalendarNone     = "none"
)

const (
	MaxRating = 5.0

	DefaultRating          = 4.5
	DefaultExperienceYears = 5
)

// DefaultLanguages is used when a platform omits spoken languages
func DefaultLanguages() []string {
	return []string{"English"}
}

// Mentor is the canonical mentor record shared by every platform.
// Records are built fresh for each fetch and are not modified afterwards.
type Mentor struct {
	ID         string   `json:"id"`
	Platform   Platform `json:"platform"`
	PlatformID string   `json:"platformId"`

	Name            string   `json:"name"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	AvatarURL       string   `json:"avatarUrl"`
	Bio             string   `json:"bio"`
	Languages       []string `json:"languages"`
	ExperienceYears int      `json:"experienceYears"`

	Expertise       []string `json:"expertise"`
	Specializations []string `json:"specializations"`

	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	MenteeCount int     `json:"menteeCount"`

	HourlyRate   float64  `json:"hourlyRate"`
	SessionTypes []string `json:"sessionTypes"`
	ResponseTime string   `json:"responseTime"`

	Availability   AvailabilityStatus `json:"availability"`
	NextAvailable  *time.Time         `json:"nextAvailable"`
	AvailableSlots []time.Time        `json:"availableSlots"`

	BookingURL string `json:"bookingUrl"`
	ProfileURL string `json:"profileUrl"`
}

// MentorID builds the globally unique id for a platform-native id
func MentorID(platform Platform, nativeID string) string {
	return string(platform) + "-" + nativeID
}

// ClampRating bounds a rating to [0, MaxRating]
func ClampRating(r float64) float64 {
	switch {
	case r < 0:
		return 0
	case r > MaxRating:
		return MaxRating
	default:
		return r
	}
}

// SortedSlots returns a time-ordered copy of slots, never nil
func SortedSlots(slots []time.Time) []time.Time {
	out := make([]time.Time, len(slots))
	copy(out, slots)
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// UpcomingSlots returns the slots strictly after now in time order, never nil
func UpcomingSlots(slots []time.Time, now time.Time) []time.Time {
	out := make([]time.Time, 0, len(slots))
	for _, slot := range slots {
		if slot.After(now) {
			out = append(out, slot)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// HasExpertise reports whether any expertise tag contains query, case-insensitively
func (m *Mentor) HasExpertise(query string) bool {
	query = strings.ToLower(query)
	for _, tag := range m.Expertise {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// CalendarType returns the calendar service behind the mentor's booking URL
func (m *Mentor) CalendarType() string {
	return GetCalendarType(m.BookingURL)
}

// MentorFilters are the optional criteria of a mentor listing. Zero values mean unconstrained.
type MentorFilters struct {
	Expertise    string             `form:"expertise" json:"expertise,omitempty"`
	Location     string             `form:"location" json:"location,omitempty"`
	Availability AvailabilityStatus `form:"availability" json:"availability,omitempty"`
	MaxRate      *float64           `form:"maxRate" json:"maxRate,omitempty" binding:"omitempty,gte=0"`
	SortBy       SortField          `form:"sortBy" json:"sortBy,omitempty" binding:"omitempty,oneof=rating price reviews experience"`
}

// OnlyAvailable is the availability flag forwarded to platform APIs
func (f MentorFilters) OnlyAvailable() bool {
	return f.Availability == StatusAvailable
}

// SortField selects the ordering of an aggregated listing
type SortField string

const (
	SortByRating     SortField = "rating"
	SortByPrice      SortField = "price"
	SortByReviews    SortField = "reviews"
	SortByExperience SortField = "experience"
)

// GetCalendarType determines the calendar service type from the URL host
func GetCalendarType(rawURL string) string {
	if strings.TrimSpace(rawURL) == "" {
		return CalendarNone
	}

	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return CalendarURL
	}
	host := strings.ToLower(u.Hostname())

	switch {
	case hostIs(host, "calendly.com"):
		return CalendarCalendly
	case hostIs(host, "cal.com"):
		return CalendarCalCom
	default:
		return CalendarURL
	}
}

func hostIs(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// BookingLink is the account and event named by a booking page URL
type BookingLink struct {
	Account string
	Event   string
	// Team is set for Cal.com team pages (/team/<slug>/<event>)
	Team bool
}

// ParseBookingLink splits a booking URL like https://calendly.com/jane/30min
// into the account name ("jane") and the optional event slug ("30min").
func ParseBookingLink(rawURL string) BookingLink {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return BookingLink{}
	}

	parts := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
	var link BookingLink
	if len(parts) > 1 && parts[0] == "team" {
		link.Team = true
		parts = parts[1:]
	}
	if len(parts) > 0 {
		link.Account = parts[0]
	}
	if len(parts) > 1 {
		link.Event = parts[1]
	}
	return link
}
