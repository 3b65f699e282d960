package timeslots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

func groupRow(room, date string, time types.TimeString, first, last, code string) domain.Booking {
	return domain.Booking{
		RoomID:     room,
		RoomName:   "Sala " + room,
		Date:       date,
		Time:       time,
		FirstName:  first,
		LastName:   last,
		CancelCode: code,
	}
}

func TestGroupConsecutive_MergesBackToBack(t *testing.T) {
	rows := []domain.Booking{
		groupRow("r1", "2026-03-15", "10:00", "Ana", "Pérez", "CXL-AAAAAAAA"),
		groupRow("r1", "2026-03-15", "09:00", "Ana", "Pérez", "CXL-AAAAAAAA"),
		groupRow("r1", "2026-03-15", "09:30", "Ana", "Pérez", "CXL-AAAAAAAA"),
	}

	blocks := GroupConsecutive(rows, 30)
	require.Len(t, blocks, 1)

	b := blocks[0]
	assert.Equal(t, types.TimeString("09:00"), b.StartTime)
	assert.Equal(t, types.TimeString("10:30"), b.EndTime)
	assert.Equal(t, "Ana Pérez", b.Person)
	assert.Equal(t, "CXL-AAAAAAAA", b.CancelCode)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00"}, b.Times)
}

func TestGroupConsecutive_GapSplitsBlocks(t *testing.T) {
	rows := []domain.Booking{
		groupRow("r1", "2026-03-15", "09:00", "Ana", "Pérez", "CXL-AAAAAAAA"),
		groupRow("r1", "2026-03-15", "10:00", "Ana", "Pérez", "CXL-AAAAAAAA"),
	}

	blocks := GroupConsecutive(rows, 30)
	require.Len(t, blocks, 2)
	assert.Equal(t, types.TimeString("09:00"), blocks[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), blocks[1].StartTime)
}

func TestGroupConsecutive_DifferentPersonOrRoomSplits(t *testing.T) {
	rows := []domain.Booking{
		groupRow("r1", "2026-03-15", "09:00", "Ana", "Pérez", "CXL-AAAAAAAA"),
		groupRow("r1", "2026-03-15", "09:30", "Luis", "Gómez", "CXL-BBBBBBBB"),
		groupRow("r2", "2026-03-15", "10:00", "Ana", "Pérez", "CXL-CCCCCCCC"),
	}

	blocks := GroupConsecutive(rows, 30)
	assert.Len(t, blocks, 3)
}

func TestGroupConsecutive_AdjacentGroupsSamePersonMerge(t *testing.T) {
	// two separate bookings of the same person, back to back: one block
	// keeping the first booking's code
	rows := []domain.Booking{
		groupRow("r1", "2026-03-15", "09:00", "Ana", "Pérez", "CXL-AAAAAAAA"),
		groupRow("r1", "2026-03-15", "09:30", "Ana", "Pérez", "CXL-BBBBBBBB"),
	}

	blocks := GroupConsecutive(rows, 30)
	require.Len(t, blocks, 1)
	assert.Equal(t, "CXL-AAAAAAAA", blocks[0].CancelCode)
	assert.Equal(t, types.TimeString("10:00"), blocks[0].EndTime)
}

func TestGroupConsecutive_Empty(t *testing.T) {
	assert.Nil(t, GroupConsecutive(nil, 30))
}
