package models

import "time"

// ResultMode tells the caller how a booking or message result was produced
type ResultMode string

const (
	ModeLive     ResultMode = "live"
	ModeMock     ResultMode = "mock"
	ModeFallback ResultMode = "fallback"
)

// UserDetails identifies the person booking or writing to a mentor
type UserDetails struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Email    string `json:"email" binding:"required,email"`
	Timezone string `json:"timezone,omitempty" binding:"omitempty,timezone"`
	Notes    string `json:"notes,omitempty" binding:"max=2000"`
}

// TimezoneOrUTC returns the invitee timezone, defaulting to UTC
func (u UserDetails) TimezoneOrUTC() string {
	if u.Timezone == "" {
		return "UTC"
	}
	return u.Timezone
}

// Availability is the bookable time of a mentor
type Availability struct {
	Available bool        `json:"available"`
	Slots     []time.Time `json:"slots"`
}

// ScheduleMeetingRequest is the body of a booking request
type ScheduleMeetingRequest struct {
	TimeSlot time.Time   `json:"timeSlot" binding:"required"`
	User     UserDetails `json:"user"`
}

// BookingResult describes a scheduled meeting
type BookingResult struct {
	Success       bool       `json:"success"`
	MeetingID     string     `json:"meetingId"`
	MeetingURL    string     `json:"meetingUrl"`
	ScheduledTime time.Time  `json:"scheduledTime"`
	Mentor        *Mentor    `json:"mentor"`
	Message       string     `json:"message"`
	Mode          ResultMode `json:"mode"`
}

// SendMessageRequest is the body of a message to a mentor
type SendMessageRequest struct {
	Message string      `json:"message" binding:"required,min=1,max=5000"`
	User    UserDetails `json:"user"`
}

// MessageResult describes a delivered message
type MessageResult struct {
	Success           bool       `json:"success"`
	MessageID         string     `json:"messageId"`
	Message           string     `json:"message"`
	EstimatedResponse string     `json:"estimatedResponse"`
	Mode              ResultMode `json:"mode"`
}
