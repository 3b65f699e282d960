package failover

import (
	"context"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// BookingStorage операции хранилища бронирований.
// Реализуется репозиторием PostgreSQL и хранилищем в памяти.
type BookingStorage interface {
	CreateGroup(ctx context.Context, rows []*domain.Booking) ([]*domain.Booking, error)
	ReplaceGroup(ctx context.Context, cancelCode string, rows []*domain.Booking) ([]*domain.Booking, error)
	GetByCancelCode(ctx context.Context, cancelCode string) ([]*domain.Booking, error)
	GetByRoomAndDate(ctx context.Context, roomID, date string) ([]*domain.Booking, error)
	GetByDate(ctx context.Context, date string) ([]*domain.Booking, error)
	GetUpcoming(ctx context.Context, filter domain.UpcomingFilter) ([]*domain.Booking, error)
	GetByRange(ctx context.Context, filter domain.HistoryFilter) ([]*domain.Booking, error)
	GetByPersonAndSlot(ctx context.Context, firstName, lastName, date string, t types.TimeString) ([]*domain.Booking, error)
	DeleteByCancelCode(ctx context.Context, cancelCode string) (int64, error)
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
