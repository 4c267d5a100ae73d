package platforms

import (
	"testing"
	"time"

	"github.com/getmentor/mentor-aggregator/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func TestFallbackMentors_Invariants(t *testing.T) {
	mentors := FallbackMentors(testNow)
	require.NotEmpty(t, mentors)

	seen := map[string]bool{}
	platforms := map[models.Platform]bool{}
	for _, m := range mentors {
		assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
		platforms[m.Platform] = true

		assert.Equal(t, models.MentorID(m.Platform, m.PlatformID), m.ID)
		assert.GreaterOrEqual(t, m.Rating, 0.0)
		assert.LessOrEqual(t, m.Rating, models.MaxRating)
		assert.NotNil(t, m.AvailableSlots)
		for i := 1; i < len(m.AvailableSlots); i++ {
			assert.True(t, m.AvailableSlots[i-1].Before(m.AvailableSlots[i]), "slots of %s not ascending", m.ID)
		}
	}

	assert.True(t, platforms[models.PlatformADPList])
	assert.True(t, platforms[models.PlatformMentorCruise])
	assert.True(t, platforms[models.PlatformIndependent])
}

func TestFallbackMentors_FreshPerCall(t *testing.T) {
	first := FallbackMentors(testNow)
	second := FallbackMentors(testNow)

	first[0].Name = "changed"
	assert.NotEqual(t, "changed", second[0].Name)
}

func TestFallbackMentorsFor(t *testing.T) {
	mentors := FallbackMentorsFor(models.PlatformMentorCruise, testNow)
	require.NotEmpty(t, mentors)
	for _, m := range mentors {
		assert.Equal(t, models.PlatformMentorCruise, m.Platform)
	}
}

func TestMockAvailability(t *testing.T) {
	availability := MockAvailability(testNow)

	assert.True(t, availability.Available)
	assert.Equal(t, []time.Time{
		testNow.Add(24 * time.Hour),
		testNow.Add(48 * time.Hour),
		testNow.Add(72 * time.Hour),
	}, availability.Slots)
}

func TestMockAndFallbackResults(t *testing.T) {
	mentor := FallbackMentors(testNow)[0]
	slot := testNow.Add(time.Hour)

	booking := MockBooking(mentor, slot)
	assert.True(t, booking.Success)
	assert.Equal(t, models.ModeMock, booking.Mode)
	assert.Contains(t, booking.MeetingURL, PlaceholderMeetingHost)
	assert.Equal(t, slot, booking.ScheduledTime)
	assert.Same(t, mentor, booking.Mentor)

	fallback := FallbackBooking(mentor, slot)
	assert.True(t, fallback.Success)
	assert.Equal(t, models.ModeFallback, fallback.Mode)
	assert.NotEqual(t, booking.MeetingID, fallback.MeetingID)

	msg := MockMessage(mentor)
	assert.True(t, msg.Success)
	assert.Equal(t, mentor.ResponseTime, msg.EstimatedResponse)
	assert.Equal(t, models.ModeMock, msg.Mode)

	assert.Equal(t, models.ModeFallback, FallbackMessage(mentor).Mode)
}
