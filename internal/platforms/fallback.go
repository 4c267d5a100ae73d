package platforms

import (
	"fmt"
	"time"

	"github.com/getmentor/mentor-aggregator/internal/models"
	"github.com/google/uuid"
)

// PlaceholderMeetingHost hosts the meeting links of mock bookings
const PlaceholderMeetingHost = "https://meet.mentor-aggregator.dev"

// mockSlotOffsets are the offsets from now of synthesized availability
var mockSlotOffsets = []time.Duration{24 * time.Hour, 48 * time.Hour, 72 * time.Hour}

// MockSlots returns three bookable slots one, two and three days after now
func MockSlots(now time.Time) []time.Time {
	slots := make([]time.Time, 0, len(mockSlotOffsets))
	for _, offset := range mockSlotOffsets {
		slots = append(slots, now.Add(offset))
	}
	return slots
}

// MockAvailability is served when no calendar provider can be asked
func MockAvailability(now time.Time) models.Availability {
	return models.Availability{Available: true, Slots: MockSlots(now)}
}

// UnavailableAvailability is the answer for a provider with nothing open
func UnavailableAvailability() models.Availability {
	return models.Availability{Available: false, Slots: []time.Time{}}
}

// MockBooking synthesizes a successful booking without contacting any provider
func MockBooking(mentor *models.Mentor, slot time.Time) *models.BookingResult {
	id := "mock-" + uuid.NewString()
	return &models.BookingResult{
		Success:       true,
		MeetingID:     id,
		MeetingURL:    PlaceholderMeetingHost + "/" + id,
		ScheduledTime: slot,
		Mentor:        mentor,
		Message:       fmt.Sprintf("Meeting scheduled with %s", mentor.Name),
		Mode:          models.ModeMock,
	}
}

// FallbackBooking acknowledges a booking that could not be confirmed upstream
func FallbackBooking(mentor *models.Mentor, slot time.Time) *models.BookingResult {
	id := "fallback-" + uuid.NewString()
	return &models.BookingResult{
		Success:       true,
		MeetingID:     id,
		MeetingURL:    firstNonEmpty(mentor.BookingURL, PlaceholderMeetingHost+"/"+id),
		ScheduledTime: slot,
		Mentor:        mentor,
		Message:       fmt.Sprintf("Booking request received, %s will confirm the meeting", mentor.Name),
		Mode:          models.ModeFallback,
	}
}

// MockMessage synthesizes a delivered message without contacting any platform
func MockMessage(mentor *models.Mentor) *models.MessageResult {
	return &models.MessageResult{
		Success:           true,
		MessageID:         "mock-" + uuid.NewString(),
		Message:           fmt.Sprintf("Message sent to %s", mentor.Name),
		EstimatedResponse: mentor.ResponseTime,
		Mode:              models.ModeMock,
	}
}

// FallbackMessage acknowledges a message that could not be delivered upstream
func FallbackMessage(mentor *models.Mentor) *models.MessageResult {
	return &models.MessageResult{
		Success:           true,
		MessageID:         "fallback-" + uuid.NewString(),
		Message:           fmt.Sprintf("Message queued for %s", mentor.Name),
		EstimatedResponse: mentor.ResponseTime,
		Mode:              models.ModeFallback,
	}
}

// FallbackMentors returns the built-in mentor dataset. Records are created on
// every call so callers never share them; timestamps are relative to now.
func FallbackMentors(now time.Time) []*models.Mentor {
	at := func(hours int) *time.Time {
		t := now.Add(time.Duration(hours) * time.Hour)
		return &t
	}
	slots := func(hours ...int) []time.Time {
		out := make([]time.Time, 0, len(hours))
		for _, h := range hours {
			out = append(out, now.Add(time.Duration(h)*time.Hour))
		}
		return out
	}

	return []*models.Mentor{
		{
			ID:              models.MentorID(models.PlatformADPList, "sarah-chen"),
			Platform:        models.PlatformADPList,
			PlatformID:      "sarah-chen",
			Name:            "Sarah Chen",
			Title:           "Senior Product Designer",
			Company:         "Figma",
			Location:        "San Francisco, USA",
			AvatarURL:       "https://images.adplist.org/mentors/sarah-chen.jpg",
			Bio:             "Design systems lead helping designers grow into senior and staff roles.",
			Languages:       []string{"English", "Mandarin"},
			ExperienceYears: 9,
			Expertise:       []string{"Product Design", "Design Systems", "UX Research"},
			Specializations: []string{"Portfolio Review", "Career Growth"},
			Rating:          4.9,
			ReviewCount:     214,
			MenteeCount:     530,
			HourlyRate:      0,
			SessionTypes:    []string{"1:1 Mentorship", "Portfolio Review"},
			ResponseTime:    "Within 24 hours",
			Availability:    models.StatusAvailable,
			NextAvailable:   at(26),
			AvailableSlots:  slots(26, 50, 74),
			BookingURL:      "https://calendly.com/sarah-chen/30min",
			ProfileURL:      "https://adplist.org/mentors/sarah-chen",
		},
		{
			ID:              models.MentorID(models.PlatformADPList, "marcus-johnson"),
			Platform:        models.PlatformADPList,
			PlatformID:      "marcus-johnson",
			Name:            "Marcus Johnson",
			Title:           "Engineering Manager",
			Company:         "Stripe",
			Location:        "Dublin, Ireland",
			AvatarURL:       "https://images.adplist.org/mentors/marcus-johnson.jpg",
			Bio:             "Manages payments infrastructure teams and coaches first-time managers.",
			Languages:       []string{"English"},
			ExperienceYears: 12,
			Expertise:       []string{"Engineering Management", "Backend Development", "Go"},
			Specializations: []string{"Leadership", "System Design"},
			Rating:          4.7,
			ReviewCount:     98,
			MenteeCount:     160,
			HourlyRate:      0,
			SessionTypes:    []string{"1:1 Mentorship"},
			ResponseTime:    "Within 48 hours",
			Availability:    models.StatusBusy,
			NextAvailable:   at(120),
			AvailableSlots:  slots(120, 144),
			BookingURL:      "https://calendly.com/marcus-johnson",
			ProfileURL:      "https://adplist.org/mentors/marcus-johnson",
		},
		{
			ID:              models.MentorID(models.PlatformADPList, "amara-okafor"),
			Platform:        models.PlatformADPList,
			PlatformID:      "amara-okafor",
			Name:            "Amara Okafor",
			Title:           "UX Researcher",
			Company:         "Spotify",
			Location:        "London, UK",
			AvatarURL:       "https://images.adplist.org/mentors/amara-okafor.jpg",
			Bio:             "Mixed-methods researcher. Happy to talk about breaking into UX research.",
			Languages:       []string{"English", "Yoruba"},
			ExperienceYears: 6,
			Expertise:       []string{"UX Research", "Product Strategy"},
			Specializations: []string{"Career Switch", "Interview Prep"},
			Rating:          4.8,
			ReviewCount:     141,
			MenteeCount:     302,
			HourlyRate:      0,
			SessionTypes:    []string{"1:1 Mentorship", "Mock Interview"},
			ResponseTime:    "Within 24 hours",
			Availability:    models.StatusAvailable,
			NextAvailable:   at(30),
			AvailableSlots:  slots(30, 54),
			ProfileURL:      "https://adplist.org/mentors/amara-okafor",
		},
		{
			ID:              models.MentorID(models.PlatformMentorCruise, "1042"),
			Platform:        models.PlatformMentorCruise,
			PlatformID:      "1042",
			Name:            "David Müller",
			Title:           "Staff Software Engineer",
			Company:         "Google",
			Location:        "Munich, Germany",
			AvatarURL:       "https://cdn.mentorcruise.com/mentors/1042.jpg",
			Bio:             "Distributed systems engineer mentoring backend developers towards senior roles.",
			Languages:       []string{"English", "German"},
			ExperienceYears: 15,
			Expertise:       []string{"Backend Development", "Distributed Systems", "Kubernetes"},
			Specializations: []string{"System Design", "Career Growth"},
			Rating:          4.95,
			ReviewCount:     76,
			MenteeCount:     58,
			HourlyRate:      180,
			SessionTypes:    []string{"Lite", "Standard", "Pro"},
			ResponseTime:    "Within 12 hours",
			Availability:    models.StatusAvailable,
			NextAvailable:   at(20),
			AvailableSlots:  slots(20, 44, 68),
			BookingURL:      "https://cal.com/david-muller/intro",
			ProfileURL:      "https://mentorcruise.com/mentor/davidmuller/",
		},
		{
			ID:              models.MentorID(models.PlatformMentorCruise, "2210"),
			Platform:        models.PlatformMentorCruise,
			PlatformID:      "2210",
			Name:            "Priya Raman",
			Title:           "Data Science Lead",
			Company:         "Airbnb",
			Location:        "Bangalore, India",
			AvatarURL:       "https://cdn.mentorcruise.com/mentors/2210.jpg",
			Bio:             "Leads experimentation and ML teams. Mentors aspiring data scientists.",
			Languages:       []string{"English", "Tamil", "Hindi"},
			ExperienceYears: 10,
			Expertise:       []string{"Data Science", "Machine Learning", "Python"},
			Specializations: []string{"Interview Prep", "Portfolio Review"},
			Rating:          4.6,
			ReviewCount:     52,
			MenteeCount:     41,
			HourlyRate:      120,
			SessionTypes:    []string{"Lite", "Standard"},
			ResponseTime:    "Within 24 hours",
			Availability:    models.StatusAvailable,
			NextAvailable:   at(40),
			AvailableSlots:  slots(40, 64),
			BookingURL:      "https://cal.com/priya-raman",
			ProfileURL:      "https://mentorcruise.com/mentor/priyaraman/",
		},
		{
			ID:              models.MentorID(models.PlatformMentorCruise, "3307"),
			Platform:        models.PlatformMentorCruise,
			PlatformID:      "3307",
			Name:            "Lucas Moreau",
			Title:           "Frontend Architect",
			Company:         "Shopify",
			Location:        "Montreal, Canada",
			AvatarURL:       "https://cdn.mentorcruise.com/mentors/3307.jpg",
			Bio:             "React and web performance specialist, former bootcamp instructor.",
			Languages:       []string{"English", "French"},
			ExperienceYears: 11,
			Expertise:       []string{"Frontend Development", "React", "TypeScript"},
			Specializations: []string{"Code Review", "Career Growth"},
			Rating:          4.4,
			ReviewCount:     33,
			MenteeCount:     27,
			HourlyRate:      95,
			SessionTypes:    []string{"Lite", "Standard", "Pro"},
			ResponseTime:    "Within 48 hours",
			Availability:    models.StatusBusy,
			NextAvailable:   at(168),
			AvailableSlots:  []time.Time{},
			BookingURL:      "https://cal.com/lucas-moreau/30min",
			ProfileURL:      "https://mentorcruise.com/mentor/lucasmoreau/",
		},
		{
			ID:              models.MentorID(models.PlatformIndependent, "elena-petrova"),
			Platform:        models.PlatformIndependent,
			PlatformID:      "elena-petrova",
			Name:            "Elena Petrova",
			Title:           "Independent Product Coach",
			Company:         "Self-employed",
			Location:        "Remote",
			AvatarURL:       "https://cal.com/api/avatar/elena-petrova.png",
			Bio:             "Former VP Product coaching PMs through promotions and job searches.",
			Languages:       []string{"English", "Russian"},
			ExperienceYears: 14,
			Expertise:       []string{"Product Management", "Product Strategy", "Leadership"},
			Specializations: []string{"Promotion Coaching", "Interview Prep"},
			Rating:          4.85,
			ReviewCount:     64,
			MenteeCount:     90,
			HourlyRate:      150,
			SessionTypes:    []string{"Coaching Session"},
			ResponseTime:    "Within 24 hours",
			Availability:    models.StatusAvailable,
			NextAvailable:   at(28),
			AvailableSlots:  slots(28, 52, 76),
			BookingURL:      "https://cal.com/elena-petrova/coaching",
			ProfileURL:      "https://cal.com/elena-petrova",
		},
		{
			ID:              models.MentorID(models.PlatformIndependent, "tomas-silva"),
			Platform:        models.PlatformIndependent,
			PlatformID:      "tomas-silva",
			Name:            "Tomás Silva",
			Title:           "DevOps Consultant",
			Company:         "Silva Cloud Consulting",
			Location:        "Lisbon, Portugal",
			AvatarURL:       "https://cal.com/api/avatar/tomas-silva.png",
			Bio:             "Cloud infrastructure consultant. Mentors engineers moving into platform roles.",
			Languages:       []string{"English", "Portuguese", "Spanish"},
			ExperienceYears: 8,
			Expertise:       []string{"DevOps", "Kubernetes", "AWS"},
			Specializations: []string{"Certification Prep"},
			Rating:          4.3,
			ReviewCount:     19,
			MenteeCount:     25,
			HourlyRate:      80,
			SessionTypes:    []string{"Coaching Session", "Architecture Review"},
			ResponseTime:    "Within 72 hours",
			Availability:    models.StatusBusy,
			NextAvailable:   nil,
			AvailableSlots:  []time.Time{},
			BookingURL:      "https://cal.com/tomas-silva",
			ProfileURL:      "https://cal.com/tomas-silva",
		},
	}
}

// FallbackMentorsFor returns the fallback mentors tagged with platform p
func FallbackMentorsFor(p models.Platform, now time.Time) []*models.Mentor {
	all := FallbackMentors(now)
	out := make([]*models.Mentor, 0, len(all))
	for _, m := range all {
		if m.Platform == p {
			out = append(out, m)
		}
	}
	return out
}
