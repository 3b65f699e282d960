package edit_booking

import (
	editBooking "github.com/GabrielEscala/Proyecto-Salas/internal/usecase/edit_booking"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// EditBookingRequest HTTP request model
type EditBookingRequest struct {
	CancelCode string   `json:"cancelCode"`
	RoomID     string   `json:"roomId,omitempty"`
	Date       string   `json:"date"`
	Times      []string `json:"times"`
	FirstName  string   `json:"firstName,omitempty"`
	LastName   string   `json:"lastName,omitempty"`
	Email      string   `json:"email,omitempty"`
	Company    string   `json:"company,omitempty"`
	Clients    string   `json:"clients,omitempty"`
}

// BookingRowResponse одна строка изменённой группы
type BookingRowResponse struct {
	ID       string `json:"id"`
	RoomID   string `json:"roomId"`
	RoomName string `json:"roomName"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	EndTime  string `json:"endTime"`
}

// EditBookingResponse HTTP response model
type EditBookingResponse struct {
	Bookings   []BookingRowResponse `json:"bookings"`
	CancelCode string               `json:"cancelCode"`
	TimeRange  string               `json:"timeRange"`
	Storage    string               `json:"storage"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EditBookingRequest) ToUseCaseRequest() (*editBooking.Request, error) {
	times := make([]types.TimeString, 0, len(r.Times))
	for _, raw := range r.Times {
		t, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, err
		}
		times = append(times, t)
	}

	return &editBooking.Request{
		CancelCode: r.CancelCode,
		RoomID:     r.RoomID,
		Date:       r.Date,
		Times:      times,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Company:    r.Company,
		Clients:    r.Clients,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *editBooking.Response) *EditBookingResponse {
	rows := make([]BookingRowResponse, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		rows = append(rows, BookingRowResponse{
			ID:       row.ID,
			RoomID:   row.RoomID,
			RoomName: row.RoomName,
			Date:     row.Date,
			Time:     row.Time.String(),
			EndTime:  row.EndTime.String(),
		})
	}
	return &EditBookingResponse{
		Bookings:   rows,
		CancelCode: resp.CancelCode,
		TimeRange:  resp.TimeRange,
		Storage:    resp.Storage,
	}
}
