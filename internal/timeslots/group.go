package timeslots

import (
	"sort"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// Block is a run of back-to-back slot rows held by one person in one
// room on one date. EndTime is the exclusive end of the last slot.
type Block struct {
	RoomID     string
	RoomName   string
	Date       string
	StartTime  types.TimeString
	EndTime    types.TimeString
	Person     string
	Email      *string
	Notes      *string
	CancelCode string
	Times      []types.TimeString
}

// GroupConsecutive merges per-slot booking rows into display blocks:
// rows with the same room, date and person merge while each next slot
// starts exactly where the previous one ends. Rows from different
// cancel codes still merge when adjacent; the block keeps the code of
// its first row.
func GroupConsecutive(rows []domain.Booking, intervalMinutes int) []Block {
	if len(rows) == 0 {
		return nil
	}
	sorted := make([]domain.Booking, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := &sorted[i], &sorted[j]
		if a.RoomID != b.RoomID {
			return a.RoomID < b.RoomID
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.PersonKey() != b.PersonKey() {
			return a.PersonKey() < b.PersonKey()
		}
		return a.Time.IsBefore(b.Time)
	})

	var blocks []Block
	for i := range sorted {
		r := &sorted[i]
		end, err := r.Time.AddMinutes(intervalMinutes)
		if err != nil {
			continue
		}
		if n := len(blocks); n > 0 {
			last := &blocks[n-1]
			if last.RoomID == r.RoomID && last.Date == r.Date &&
				last.Person == r.PersonKey() && last.EndTime == r.Time {
				last.EndTime = end
				last.Times = append(last.Times, r.Time)
				continue
			}
		}
		blocks = append(blocks, Block{
			RoomID:     r.RoomID,
			RoomName:   r.RoomName,
			Date:       r.Date,
			StartTime:  r.Time,
			EndTime:    end,
			Person:     r.PersonKey(),
			Email:      r.Email,
			Notes:      r.Notes,
			CancelCode: r.CancelCode,
			Times:      []types.TimeString{r.Time},
		})
	}
	return blocks
}
