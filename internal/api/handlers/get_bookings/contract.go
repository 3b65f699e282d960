package get_bookings

import (
	"context"

	"github.com/GabrielEscala/Proyecto-Salas/internal/service/bookings/models"
)

type BookingService interface {
	ListByDate(ctx context.Context, date, roomID string) (*models.BookingListResponse, error)
	ListByCode(ctx context.Context, code string) (*models.BookingListResponse, error)
	Blocks(ctx context.Context, date string) (*models.BlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
