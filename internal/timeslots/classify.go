package timeslots

import (
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// SlotStatus is the availability state of one grid slot.
type SlotStatus string

const (
	// StatusAvailable slot is free and still bookable
	StatusAvailable SlotStatus = "available"
	// StatusReserved slot is occupied by a booking
	StatusReserved SlotStatus = "reserved"
	// StatusInvalid slot can no longer be booked (already started, or
	// the room itself is not bookable)
	StatusInvalid SlotStatus = "invalid"
)

// SlotState is the classified state of one grid slot.
type SlotState struct {
	Time     types.TimeString
	Status   SlotStatus
	Occupant string // display name, reserved slots only
}

// Classify maps every grid slot of a room's day onto its state.
// A reserved slot stays reserved even when it is also in the past:
// showing who holds the room beats showing a dead slot. When hasRoom
// is false every slot is invalid.
func Classify(grid GridConfig, rows []domain.Booking, date string, now time.Time, loc *time.Location, hasRoom bool) []SlotState {
	occupants := make(map[types.TimeString]string, len(rows))
	for i := range rows {
		occupants[rows[i].Time] = rows[i].PersonKey()
	}

	slots := grid.Slots()
	states := make([]SlotState, 0, len(slots))
	for _, slot := range slots {
		state := SlotState{Time: slot, Status: StatusAvailable}
		switch {
		case !hasRoom:
			state.Status = StatusInvalid
		case occupants[slot] != "":
			state.Status = StatusReserved
			state.Occupant = occupants[slot]
		case IsSlotInPast(date, slot, now, loc):
			state.Status = StatusInvalid
		}
		states = append(states, state)
	}
	return states
}

// StateRange is a run of consecutive grid slots sharing one status.
// End is the exclusive end time of the last slot in the run.
type StateRange struct {
	Start    types.TimeString
	End      types.TimeString
	Status   SlotStatus
	Occupant string
}

// Ranges collapses the classified slots into display ranges: adjacent
// slots merge while status and occupant both match.
func Ranges(grid GridConfig, states []SlotState) []StateRange {
	var out []StateRange
	for _, s := range states {
		end := grid.SlotEnd(s.Time)
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.Status == s.Status && last.Occupant == s.Occupant && last.End == s.Time {
				last.End = end
				continue
			}
		}
		out = append(out, StateRange{Start: s.Time, End: end, Status: s.Status, Occupant: s.Occupant})
	}
	return out
}
