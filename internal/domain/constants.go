package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default slot grid configuration
const (
	DefaultGridStart       = "07:00"
	DefaultGridEnd         = "20:00"
	DefaultIntervalMinutes = 30
)

// Governing time zones. The default zone applies to standard and
// alternate-site rooms; event rooms run on the event zone.
const (
	DefaultTimeZone = "America/Caracas"
	EventTimeZone   = "Europe/Madrid"
)

// Validation limits
const (
	MaxNameLength  = 120
	MaxNotesLength = 500
)
