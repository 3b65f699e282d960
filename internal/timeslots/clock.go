package timeslots

import (
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// TodayIn returns "today" as a YYYY-MM-DD string in the governing zone.
// All past/future decisions compare these strings, never time.Time values.
func TodayIn(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(domain.DateFormat)
}

// CurrentTimeIn returns the current wall time "HH:MM" in the governing zone.
func CurrentTimeIn(now time.Time, loc *time.Location) types.TimeString {
	return types.NewTimeString(now.In(loc))
}

// IsDateBeforeToday reports whether date lies strictly before today in
// the governing zone. Dates are compared as strings.
func IsDateBeforeToday(date string, now time.Time, loc *time.Location) bool {
	return date < TodayIn(now, loc)
}

// IsSlotInPast reports whether the slot (date, t) has already started.
// A slot on a past date is past regardless of its time; a slot today is
// past only once the wall clock is strictly past the slot start, so the
// slot beginning this very minute is still open. Future dates are never
// past.
func IsSlotInPast(date string, t types.TimeString, now time.Time, loc *time.Location) bool {
	today := TodayIn(now, loc)
	if date < today {
		return true
	}
	if date > today {
		return false
	}
	return CurrentTimeIn(now, loc).IsAfter(t)
}
