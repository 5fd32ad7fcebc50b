package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	assert.NoError(t, err)
	assert.Equal(t, "10:30", ts.String())

	for _, raw := range []string{"", "25:00", "10:60", "10-30", "abc"} {
		_, err := NewTimeStringFromString(raw)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "raw=%q", raw)
	}
}

func TestTimeString_At(t *testing.T) {
	ts := TimeString("10:30")
	date := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)

	combined, err := ts.At(date)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 3, 10, 30, 0, 0, time.UTC), combined)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:30")

	shifted, err := ts.AddMinutes(45)

	assert.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), shifted)
}

func TestTimeString_IsBefore(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("09:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
}
