package timeslots

import (
	"sort"
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// DedupTimes sorts the requested times chronologically and drops
// duplicates, so a double-submitted slot books a single row.
func DedupTimes(times []types.TimeString) []types.TimeString {
	if len(times) == 0 {
		return nil
	}
	out := make([]types.TimeString, 0, len(times))
	seen := make(map[types.TimeString]struct{}, len(times))
	for _, t := range times {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IsBefore(out[j]) })
	return out
}

// FindConflicts returns the requested times that are already occupied,
// in chronological order. A conflict is an exact slot-start match.
func FindConflicts(requested, occupied []types.TimeString) []types.TimeString {
	if len(requested) == 0 || len(occupied) == 0 {
		return nil
	}
	taken := make(map[types.TimeString]struct{}, len(occupied))
	for _, t := range occupied {
		taken[t] = struct{}{}
	}
	var conflicts []types.TimeString
	for _, t := range DedupTimes(requested) {
		if _, ok := taken[t]; ok {
			conflicts = append(conflicts, t)
		}
	}
	return conflicts
}

// NextAvailableSlot suggests an alternative slot after a conflict: it
// scans the grid forward from the earliest conflicting time and returns
// the first slot that is neither occupied nor already in the past on
// the given date. Returns nil when the rest of the day is full.
func NextAvailableSlot(grid GridConfig, occupied []types.TimeString, date string, from types.TimeString, now time.Time, loc *time.Location) *types.TimeString {
	taken := make(map[types.TimeString]struct{}, len(occupied))
	for _, t := range occupied {
		taken[t] = struct{}{}
	}
	for _, slot := range grid.Slots() {
		if slot.IsBefore(from) {
			continue
		}
		if _, ok := taken[slot]; ok {
			continue
		}
		if IsSlotInPast(date, slot, now, loc) {
			continue
		}
		s := slot
		return &s
	}
	return nil
}
