package bookings

import (
	"context"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/failover"
)

// BookingStore операции чтения хранилища с переключением
type BookingStore interface {
	GetGroup(ctx context.Context, cancelCode string) ([]*domain.Booking, failover.Storage, error)
	GetByDate(ctx context.Context, date string) ([]*domain.Booking, error)
	GetByRoomAndDate(ctx context.Context, roomID, date string) ([]*domain.Booking, error)
	GetUpcoming(ctx context.Context, filter domain.UpcomingFilter) ([]*domain.Booking, error)
	GetByRange(ctx context.Context, filter domain.HistoryFilter) ([]*domain.Booking, error)
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
