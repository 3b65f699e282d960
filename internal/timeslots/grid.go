package timeslots

import (
	"errors"
	"fmt"

	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

var (
	// ErrInvalidGrid is returned for a grid whose bounds or interval
	// cannot produce at least one slot.
	ErrInvalidGrid = errors.New("timeslots: invalid grid configuration")
)

// GridConfig describes the bookable slot grid of a day: slots start at
// StartTime and repeat every IntervalMinutes up to and including EndTime.
// The end bound is itself a bookable slot start.
type GridConfig struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	IntervalMinutes int
}

// DefaultGrid returns the stock 07:00-20:00 / 30 minute grid.
func DefaultGrid() GridConfig {
	return GridConfig{
		StartTime:       "07:00",
		EndTime:         "20:00",
		IntervalMinutes: 30,
	}
}

// Validate checks that the grid produces at least one slot.
func (g GridConfig) Validate() error {
	if err := g.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidGrid, err)
	}
	if err := g.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidGrid, err)
	}
	if g.IntervalMinutes <= 0 {
		return fmt.Errorf("%w: interval %d", ErrInvalidGrid, g.IntervalMinutes)
	}
	if g.EndTime.IsBefore(g.StartTime) {
		return fmt.Errorf("%w: start %s after end %s", ErrInvalidGrid, g.StartTime, g.EndTime)
	}
	return nil
}

// Slots enumerates every slot start of the grid in ascending order.
// The result is already zero-padded, so string order is chronological.
func (g GridConfig) Slots() []types.TimeString {
	if g.Validate() != nil {
		return nil
	}
	start, _ := g.StartTime.Minutes()
	end, _ := g.EndTime.Minutes()

	slots := make([]types.TimeString, 0, (end-start)/g.IntervalMinutes+1)
	for m := start; m <= end; m += g.IntervalMinutes {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)))
	}
	return slots
}

// Contains reports whether t is exactly one of the grid's slot starts.
func (g GridConfig) Contains(t types.TimeString) bool {
	if g.Validate() != nil || t.Validate() != nil {
		return false
	}
	if t.IsBefore(g.StartTime) || g.EndTime.IsBefore(t) {
		return false
	}
	start, _ := g.StartTime.Minutes()
	m, _ := t.Minutes()
	return (m-start)%g.IntervalMinutes == 0
}

// SlotEnd returns the exclusive end of the slot that starts at t.
func (g GridConfig) SlotEnd(t types.TimeString) types.TimeString {
	end, err := t.AddMinutes(g.IntervalMinutes)
	if err != nil {
		return t
	}
	return end
}
