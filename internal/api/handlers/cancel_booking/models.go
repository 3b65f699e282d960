package cancel_booking

import (
	cancelBooking "github.com/GabrielEscala/Proyecto-Salas/internal/usecase/cancel_booking"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// CancelBookingRequest HTTP request model.
// Либо код управления, либо фолбэк имя + фамилия + дата + время.
type CancelBookingRequest struct {
	CancelCode string `json:"cancelCode,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Date       string `json:"date,omitempty"`
	Time       string `json:"time,omitempty"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	CancelCode     string   `json:"cancelCode"`
	CancelledCount int64    `json:"cancelledCount"`
	RoomName       string   `json:"roomName"`
	Date           string   `json:"date"`
	Times          []string `json:"times"`
	Storage        string   `json:"storage"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelBookingRequest) ToUseCaseRequest() (*cancelBooking.Request, error) {
	req := &cancelBooking.Request{
		CancelCode: r.CancelCode,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Date:       r.Date,
	}
	if r.Time != "" {
		t, err := types.NewTimeStringFromString(r.Time)
		if err != nil {
			return nil, err
		}
		req.Time = t
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	times := make([]string, 0, len(resp.Times))
	for _, t := range resp.Times {
		times = append(times, t.String())
	}
	return &CancelBookingResponse{
		CancelCode:     resp.CancelCode,
		CancelledCount: resp.CancelledCount,
		RoomName:       resp.RoomName,
		Date:           resp.Date,
		Times:          times,
		Storage:        resp.Storage,
	}
}
