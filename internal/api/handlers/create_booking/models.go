package create_booking

import (
	createBooking "github.com/GabrielEscala/Proyecto-Salas/internal/usecase/create_booking"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID    string   `json:"roomId"`
	Date      string   `json:"date"`  // "2025-10-15"
	Times     []string `json:"times"` // ["10:00", "10:30"]
	Time      string   `json:"time,omitempty"` // альтернатива times для одного слота
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email,omitempty"`
	Company   string   `json:"company,omitempty"`
	Clients   string   `json:"clients,omitempty"`
}

// BookingRowResponse одна строка созданной группы
type BookingRowResponse struct {
	ID       string `json:"id"`
	RoomID   string `json:"roomId"`
	RoomName string `json:"roomName"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	EndTime  string `json:"endTime"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Bookings    []BookingRowResponse `json:"bookings"`
	CancelCode  string               `json:"cancelCode"`
	CancelURL   string               `json:"cancelUrl"`
	TimeRange   string               `json:"timeRange"`
	Storage     string               `json:"storage"`
	EmailStatus string               `json:"emailStatus"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	raws := r.Times
	if len(raws) == 0 && r.Time != "" {
		raws = []string{r.Time}
	}

	times := make([]types.TimeString, 0, len(raws))
	for _, raw := range raws {
		t, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, err
		}
		times = append(times, t)
	}

	return &createBooking.Request{
		RoomID:    r.RoomID,
		Date:      r.Date,
		Times:     times,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Company:   r.Company,
		Clients:   r.Clients,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
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
	return &CreateBookingResponse{
		Bookings:    rows,
		CancelCode:  resp.CancelCode,
		CancelURL:   resp.CancelURL,
		TimeRange:   resp.TimeRange,
		Storage:     resp.Storage,
		EmailStatus: resp.EmailStatus,
	}
}
