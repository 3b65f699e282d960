package get_history

import (
	"context"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/internal/service/bookings/models"
)

type BookingService interface {
	History(ctx context.Context, filter domain.HistoryFilter) (*models.BookingListResponse, string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
