package domain

import (
	"fmt"
	"strings"

	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// SlotConflict names the occupant of one colliding slot. Names are empty
// when the holder is unknown, e.g. after losing an insert race.
type SlotConflict struct {
	FirstName string
	LastName  string
	Time      types.TimeString
}

// SlotConflictError reports that requested slots are already taken.
// Conflicts lists the colliding slots in chronological order; Suggestion
// is the next bookable slot after the first conflict, nil when the rest
// of the day is full.
type SlotConflictError struct {
	RoomID     string
	Date       string
	Conflicts  []SlotConflict
	Suggestion *types.TimeString
}

func (e *SlotConflictError) Error() string {
	times := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		times = append(times, c.Time.String())
	}
	return fmt.Sprintf("slot conflict: room=%s date=%s times=%s",
		e.RoomID, e.Date, strings.Join(times, ","))
}

// ConflictsFromRows maps colliding times to the booked rows holding them
func ConflictsFromRows(times []types.TimeString, rows []*Booking) []SlotConflict {
	out := make([]SlotConflict, 0, len(times))
	for _, t := range times {
		c := SlotConflict{Time: t}
		for _, r := range rows {
			if r.Time == t {
				c.FirstName = r.FirstName
				c.LastName = r.LastName
				break
			}
		}
		out = append(out, c)
	}
	return out
}
