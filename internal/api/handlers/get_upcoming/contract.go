package get_upcoming

import (
	"context"

	"github.com/GabrielEscala/Proyecto-Salas/internal/service/bookings/models"
)

type BookingService interface {
	ListUpcoming(ctx context.Context, date, currentTime, roomID string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
