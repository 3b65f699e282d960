package domain

import (
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// Booking represents one reserved 30-minute slot row.
// All rows created by one booking action share a CancelCode and always
// carry the same room, date, person and notes; they are created, edited
// and cancelled together.
type Booking struct {
	ID        string
	RoomID    string
	RoomName  string
	Date      string // YYYY-MM-DD
	Time      types.TimeString
	FirstName string
	LastName  string
	Email     *string
	Notes     *string

	CancelCode string

	CreatedAt time.Time
}

// PersonKey returns the display identity used for grouping consecutive rows
func (b *Booking) PersonKey() string {
	return b.FirstName + " " + b.LastName
}

// HistoryFilter filters the history range query
type HistoryFilter struct {
	FromDate string // inclusive, YYYY-MM-DD
	ToDate   string // inclusive, YYYY-MM-DD
	RoomID   *string
}

// UpcomingFilter selects a date's rows at or after a time of day
type UpcomingFilter struct {
	Date     string           // YYYY-MM-DD
	FromTime types.TimeString // inclusive
	RoomID   *string
}
