package models

import (
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/internal/timeslots"
)

// Response модели

// BookingResponse ответ с данными одной строки бронирования
type BookingResponse struct {
	ID         string  `json:"id"`
	RoomID     string  `json:"roomId"`
	RoomName   string  `json:"roomName"`
	Date       string  `json:"date"` // "2025-10-15"
	Time       string  `json:"time"` // "10:00"
	EndTime    string  `json:"endTime"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      *string `json:"email,omitempty"`
	Company    string  `json:"company,omitempty"`
	Clients    string  `json:"clients,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	CancelCode string  `json:"cancelCode"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком строк бронирования
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// BlockResponse ответ с блоком подряд идущих слотов одного человека
type BlockResponse struct {
	RoomID     string   `json:"roomId"`
	RoomName   string   `json:"roomName"`
	Date       string   `json:"date"`
	StartTime  string   `json:"startTime"`
	EndTime    string   `json:"endTime"`
	TimeRange  string   `json:"timeRange"` // "9:00 a. m. – 10:30 a. m."
	Person     string   `json:"person"`
	Email      *string  `json:"email,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
	CancelCode string   `json:"cancelCode"`
	Times      []string `json:"times"`
}

// BlockListResponse ответ со списком блоков
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO.
// Компания и клиенты извлекаются из плоского текста заметок.
func FromDomainBooking(b *domain.Booking, intervalMinutes int) *BookingResponse {
	if b == nil {
		return nil
	}

	end, err := b.Time.AddMinutes(intervalMinutes)
	if err != nil {
		end = b.Time
	}

	resp := &BookingResponse{
		ID:         b.ID,
		RoomID:     b.RoomID,
		RoomName:   b.RoomName,
		Date:       b.Date,
		Time:       b.Time.String(),
		EndTime:    end.String(),
		FirstName:  b.FirstName,
		LastName:   b.LastName,
		Email:      b.Email,
		Notes:      b.Notes,
		CancelCode: b.CancelCode,
		CreatedAt:  b.CreatedAt,
	}

	if b.Notes != nil {
		resp.Company, resp.Clients = domain.ParseNotes(*b.Notes)
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, intervalMinutes int) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		if dto := FromDomainBooking(b, intervalMinutes); dto != nil {
			resp.Bookings = append(resp.Bookings, *dto)
		}
	}
	return resp
}

// FromBlocks конвертирует блоки подряд идущих слотов в DTO
func FromBlocks(blocks []timeslots.Block) *BlockListResponse {
	resp := &BlockListResponse{
		Blocks: make([]BlockResponse, 0, len(blocks)),
	}
	for _, bl := range blocks {
		times := make([]string, 0, len(bl.Times))
		for _, t := range bl.Times {
			times = append(times, t.String())
		}
		resp.Blocks = append(resp.Blocks, BlockResponse{
			RoomID:     bl.RoomID,
			RoomName:   bl.RoomName,
			Date:       bl.Date,
			StartTime:  bl.StartTime.String(),
			EndTime:    bl.EndTime.String(),
			TimeRange:  bl.StartTime.Format12h() + " – " + bl.EndTime.Format12h(),
			Person:     bl.Person,
			Email:      bl.Email,
			Notes:      bl.Notes,
			CancelCode: bl.CancelCode,
			Times:      times,
		})
	}
	return resp
}
