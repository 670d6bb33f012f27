package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesOfDay(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"13:30", 810},
		{"23:59", 1439},
	}

	for _, c := range cases {
		got, err := MinutesOfDay(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestMinutesOfDayRejectsMalformed(t *testing.T) {
	bad := []string{"", "9:00", "09:0", "0900", "09-00", "24:00", "09:60", "ab:cd", "09:00 "}

	for _, in := range bad {
		_, err := MinutesOfDay(in)
		assert.Error(t, err, "%q deveria ser rechazada", in)
	}
}

func TestFormatMinutesRoundTrip(t *testing.T) {
	for min := 0; min < 24*60; min += 7 {
		s := FormatMinutes(min)
		back, err := MinutesOfDay(s)
		require.NoError(t, err, s)
		assert.Equal(t, min, back)
	}
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Domingo", DayName(0))
	assert.Equal(t, "Lunes", DayName(1))
	assert.Equal(t, "Sábado", DayName(6))
	assert.Equal(t, "", DayName(7))
	assert.Equal(t, "", DayName(-1))
}
