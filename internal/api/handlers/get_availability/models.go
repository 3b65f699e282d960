package get_availability

import (
	getAvailability "github.com/GabrielEscala/Proyecto-Salas/internal/usecase/get_availability"
)

// SlotResponse состояние одного слота сетки
type SlotResponse struct {
	Time     string `json:"time"`
	EndTime  string `json:"endTime"`
	Status   string `json:"status"`
	Occupant string `json:"occupant,omitempty"`
}

// RangeResponse диапазон подряд идущих слотов с одним состоянием
type RangeResponse struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Status   string `json:"status"`
	Occupant string `json:"occupant,omitempty"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID   string          `json:"roomId"`
	RoomName string          `json:"roomName,omitempty"`
	Date     string          `json:"date"`
	Slots    []SlotResponse  `json:"slots"`
	Ranges   []RangeResponse `json:"ranges"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		RoomID:   resp.RoomID,
		RoomName: resp.RoomName,
		Date:     resp.Date,
		Slots:    make([]SlotResponse, 0, len(resp.Slots)),
		Ranges:   make([]RangeResponse, 0, len(resp.Ranges)),
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Time:     s.Time,
			EndTime:  s.EndTime,
			Status:   s.Status,
			Occupant: s.Occupant,
		})
	}
	for _, r := range resp.Ranges {
		out.Ranges = append(out.Ranges, RangeResponse{
			Start:    r.Start,
			End:      r.End,
			Status:   r.Status,
			Occupant: r.Occupant,
		})
	}
	return out
}
