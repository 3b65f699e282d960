package timeslots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

func TestDedupTimes(t *testing.T) {
	out := DedupTimes([]types.TimeString{"10:00", "09:00", "10:00", "09:30"})
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, out)

	assert.Nil(t, DedupTimes(nil))
}

func TestFindConflicts(t *testing.T) {
	occupied := []types.TimeString{"09:00", "10:30", "14:00"}

	conflicts := FindConflicts([]types.TimeString{"10:30", "09:00", "11:00"}, occupied)
	assert.Equal(t, []types.TimeString{"09:00", "10:30"}, conflicts)

	assert.Nil(t, FindConflicts([]types.TimeString{"11:00", "11:30"}, occupied))
	assert.Nil(t, FindConflicts(nil, occupied))
	assert.Nil(t, FindConflicts([]types.TimeString{"09:00"}, nil))
}

func TestNextAvailableSlot(t *testing.T) {
	grid := DefaultGrid()
	now := at("2026-03-10", 8, 0)
	date := "2026-03-20"

	// next free slot after the conflict
	occupied := []types.TimeString{"09:00", "09:30"}
	got := NextAvailableSlot(grid, occupied, date, "09:00", now, caracas)
	require.NotNil(t, got)
	assert.Equal(t, types.TimeString("10:00"), *got)

	// suggestion is never occupied and never before the conflict
	assert.NotContains(t, occupied, *got)
	assert.False(t, got.IsBefore("09:00"))
}

func TestNextAvailableSlot_SkipsPastSlots(t *testing.T) {
	grid := DefaultGrid()
	// today at 10:05 local: everything up to 10:00 already started
	now := at("2026-03-15", 10, 5)

	got := NextAvailableSlot(grid, []types.TimeString{"10:30"}, "2026-03-15", "07:00", now, caracas)
	require.NotNil(t, got)
	assert.Equal(t, types.TimeString("11:00"), *got)
}

func TestNextAvailableSlot_DayFull(t *testing.T) {
	grid := DefaultGrid()
	now := at("2026-03-10", 8, 0)

	occupied := grid.Slots()
	assert.Nil(t, NextAvailableSlot(grid, occupied, "2026-03-20", "07:00", now, caracas))

	// the end bound is the last chance of the day
	got := NextAvailableSlot(grid, nil, "2026-03-20", "19:31", now, caracas)
	require.NotNil(t, got)
	assert.Equal(t, types.TimeString("20:00"), *got)

	// nothing left after the last slot
	assert.Nil(t, NextAvailableSlot(grid, nil, "2026-03-20", "20:01", now, caracas))
}
