package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/booking"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

func row(room, date string, t types.TimeString, code string) *domain.Booking {
	return &domain.Booking{
		RoomID:     room,
		Date:       date,
		Time:       t,
		FirstName:  "Ana",
		LastName:   "Pérez",
		CancelCode: code,
	}
}

func TestBookingStore_CreateGroup(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()

	created, err := s.CreateGroup(ctx, []*domain.Booking{
		row("r1", "2026-03-15", "09:00", "CXL-AAAAAAAA"),
		row("r1", "2026-03-15", "09:30", "CXL-AAAAAAAA"),
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotEmpty(t, created[0].ID)
	assert.False(t, created[0].CreatedAt.IsZero())

	got, err := s.GetByCancelCode(ctx, "CXL-AAAAAAAA")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBookingStore_CreateGroup_SlotExclusive(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()

	_, err := s.CreateGroup(ctx, []*domain.Booking{row("r1", "2026-03-15", "09:00", "CXL-AAAAAAAA")})
	require.NoError(t, err)

	// same slot by anyone else fails, and atomically: the free 09:30
	// slot of the rejected group is not written either
	_, err = s.CreateGroup(ctx, []*domain.Booking{
		row("r1", "2026-03-15", "09:30", "CXL-BBBBBBBB"),
		row("r1", "2026-03-15", "09:00", "CXL-BBBBBBBB"),
	})
	assert.ErrorIs(t, err, booking.ErrSlotTaken)

	rows, err := s.GetByRoomAndDate(ctx, "r1", "2026-03-15")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	// other room or date is fine
	_, err = s.CreateGroup(ctx, []*domain.Booking{row("r2", "2026-03-15", "09:00", "CXL-CCCCCCCC")})
	assert.NoError(t, err)
	_, err = s.CreateGroup(ctx, []*domain.Booking{row("r1", "2026-03-16", "09:00", "CXL-DDDDDDDD")})
	assert.NoError(t, err)
}

func TestBookingStore_ReplaceGroup(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()

	_, err := s.CreateGroup(ctx, []*domain.Booking{row("r1", "2026-03-15", "09:00", "CXL-AAAAAAAA")})
	require.NoError(t, err)

	created, err := s.ReplaceGroup(ctx, "CXL-AAAAAAAA", []*domain.Booking{
		row("r1", "2026-03-16", "10:00", "CXL-AAAAAAAA"),
		row("r1", "2026-03-16", "10:30", "CXL-AAAAAAAA"),
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)

	// old slot freed
	rows, _ := s.GetByRoomAndDate(ctx, "r1", "2026-03-15")
	assert.Empty(t, rows)

	// replacing onto its own old slot works: own rows leave first
	_, err = s.ReplaceGroup(ctx, "CXL-AAAAAAAA", []*domain.Booking{row("r1", "2026-03-16", "10:00", "CXL-AAAAAAAA")})
	assert.NoError(t, err)
}

func TestBookingStore_ReplaceGroup_ConflictRestoresOldRows(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()

	_, err := s.CreateGroup(ctx, []*domain.Booking{row("r1", "2026-03-15", "09:00", "CXL-AAAAAAAA")})
	require.NoError(t, err)
	_, err = s.CreateGroup(ctx, []*domain.Booking{row("r1", "2026-03-15", "10:00", "CXL-BBBBBBBB")})
	require.NoError(t, err)

	_, err = s.ReplaceGroup(ctx, "CXL-AAAAAAAA", []*domain.Booking{row("r1", "2026-03-15", "10:00", "CXL-AAAAAAAA")})
	assert.ErrorIs(t, err, booking.ErrSlotTaken)

	// the original group survived the failed replace
	rows, err := s.GetByCancelCode(ctx, "CXL-AAAAAAAA")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, types.TimeString("09:00"), rows[0].Time)
}

func TestBookingStore_DeleteByCancelCode(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()

	_, err := s.CreateGroup(ctx, []*domain.Booking{
		row("r1", "2026-03-15", "09:00", "CXL-AAAAAAAA"),
		row("r1", "2026-03-15", "09:30", "CXL-AAAAAAAA"),
	})
	require.NoError(t, err)

	n, err := s.DeleteByCancelCode(ctx, "CXL-AAAAAAAA")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	_, err = s.DeleteByCancelCode(ctx, "CXL-AAAAAAAA")
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestBookingStore_GetByPersonAndSlot_CaseInsensitive(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()

	_, err := s.CreateGroup(ctx, []*domain.Booking{row("r1", "2026-03-15", "09:00", "CXL-AAAAAAAA")})
	require.NoError(t, err)

	rows, err := s.GetByPersonAndSlot(ctx, "  ana ", "PÉREZ", "2026-03-15", "09:00")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	rows, err = s.GetByPersonAndSlot(ctx, "Ana", "Pérez", "2026-03-15", "09:30")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestBookingStore_GetUpcomingAndRange(t *testing.T) {
	s := NewBookingStore()
	ctx := context.Background()

	_, err := s.CreateGroup(ctx, []*domain.Booking{
		row("r1", "2026-03-14", "09:00", "CXL-AAAAAAAA"),
		row("r1", "2026-03-15", "09:00", "CXL-BBBBBBBB"),
		row("r1", "2026-03-15", "14:00", "CXL-BBBBBBBB"),
		row("r2", "2026-03-15", "15:00", "CXL-DDDDDDDD"),
		row("r2", "2026-03-16", "09:00", "CXL-CCCCCCCC"),
	})
	require.NoError(t, err)

	// rows of the date at/after the cutoff, other dates excluded
	up, err := s.GetUpcoming(ctx, domain.UpcomingFilter{Date: "2026-03-15", FromTime: "10:00"})
	require.NoError(t, err)
	require.Len(t, up, 2)
	assert.Equal(t, types.TimeString("14:00"), up[0].Time)
	assert.Equal(t, types.TimeString("15:00"), up[1].Time)

	roomFilter := "r1"
	up, err = s.GetUpcoming(ctx, domain.UpcomingFilter{Date: "2026-03-15", FromTime: "09:00", RoomID: &roomFilter})
	require.NoError(t, err)
	require.Len(t, up, 2)
	assert.Equal(t, types.TimeString("09:00"), up[0].Time)

	roomID := "r1"
	hist, err := s.GetByRange(ctx, domain.HistoryFilter{FromDate: "2026-03-14", ToDate: "2026-03-16", RoomID: &roomID})
	require.NoError(t, err)
	require.Len(t, hist, 3)
	// date descending, time ascending within a date
	assert.Equal(t, "2026-03-15", hist[0].Date)
	assert.Equal(t, types.TimeString("09:00"), hist[0].Time)
	assert.Equal(t, "2026-03-14", hist[2].Date)
}
