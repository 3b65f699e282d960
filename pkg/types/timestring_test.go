package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "07:00", "09:30", "12:00", "19:30", "23:59"}
	for _, v := range valid {
		assert.NoError(t, TimeString(v).Validate(), v)
	}

	invalid := []string{"", "7:00", "24:00", "12:60", "12:5", "12-30", "noon", "12:30:00"}
	for _, v := range invalid {
		assert.Error(t, TimeString(v).Validate(), v)
	}
}

func TestTimeString_LexicographicOrderIsChronological(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:30"))
	assert.True(t, TimeString("09:30").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsAfter("09:30"))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	// storage form with seconds gets truncated
	ts, err = NewTimeStringFromString("14:00:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:00"), ts)

	ts, err = NewTimeStringFromString("  07:00 ")
	require.NoError(t, err)
	assert.Equal(t, TimeString("07:00"), ts)

	_, err = NewTimeStringFromString("9:30")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString(t *testing.T) {
	wall := time.Date(2026, 3, 15, 9, 5, 33, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeString(wall))
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = TimeString("09:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 570, m)

	_, err = TimeString("9:30").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), ts)

	ts, err = TimeString("10:00").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	// wraps at midnight instead of failing
	ts, err = TimeString("23:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:15"), ts)
}

func TestTimeString_WithSeconds(t *testing.T) {
	assert.Equal(t, "09:30:00", TimeString("09:30").WithSeconds())
}

func TestTimeString_Format12h(t *testing.T) {
	assert.Equal(t, "9:30 a. m.", TimeString("09:30").Format12h())
	assert.Equal(t, "12:00 p. m.", TimeString("12:00").Format12h())
	assert.Equal(t, "2:30 p. m.", TimeString("14:30").Format12h())
	assert.Equal(t, "12:15 a. m.", TimeString("00:15").Format12h())
	assert.Equal(t, "", TimeString("").Format12h())
}
