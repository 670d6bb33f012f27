package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOccupiedHalfOpen(t *testing.T) {
	booked := []BookedInterval{
		{Start: "09:30", End: "10:00", Status: "confirmado"},
	}

	// Bordas encostadas não conflitam.
	assert.False(t, IsOccupied("09:00", "09:30", booked))
	assert.False(t, IsOccupied("10:00", "10:30", booked))

	// Qualquer sobreposição real conflita.
	assert.True(t, IsOccupied("09:30", "10:00", booked))
	assert.True(t, IsOccupied("09:15", "09:45", booked))
	assert.True(t, IsOccupied("09:45", "10:15", booked))
	assert.True(t, IsOccupied("09:00", "11:00", booked)) // turno contido no slot
	assert.True(t, IsOccupied("09:40", "09:50", booked)) // slot contido no turno
}

func TestIsOccupiedSkipsMalformedIntervals(t *testing.T) {
	booked := []BookedInterval{
		{Start: "mañana", End: "10:00"},
		{Start: "11:00", End: "11:30"},
	}

	assert.False(t, IsOccupied("09:00", "10:00", booked))
	assert.True(t, IsOccupied("11:00", "11:30", booked))
	assert.False(t, IsOccupied("x", "y", booked))
}

func TestFilterAvailable(t *testing.T) {
	slots := GenerateSlots("09:00", "12:00", 30)
	booked := []BookedInterval{
		{Start: "09:00", End: "09:30", Status: "pendiente"},
		{Start: "10:15", End: "10:45", Status: "confirmado"},
	}

	free := FilterAvailable(slots, booked)

	starts := make([]string, 0, len(free))
	for _, s := range free {
		starts = append(starts, s.Start)
	}

	// 10:00 e 10:30 caem pelo turno das 10:15; a ordem original se mantém.
	assert.Equal(t, []string{"09:30", "11:00", "11:30"}, starts)
}

func TestFilterAvailableNoBookings(t *testing.T) {
	slots := GenerateSlots("09:00", "12:00", 30)

	free := FilterAvailable(slots, nil)
	assert.Equal(t, slots, free)

	free = FilterAvailable(nil, nil)
	assert.NotNil(t, free)
	assert.Empty(t, free)
}
