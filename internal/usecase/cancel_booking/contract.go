package cancel_booking

import (
	"context"
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/failover"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// BookingStore интерфейс хранилища бронирований с переключением
type BookingStore interface {
	GetGroup(ctx context.Context, cancelCode string) ([]*domain.Booking, failover.Storage, error)
	FindByPersonAndSlot(ctx context.Context, firstName, lastName, date string, t types.TimeString) ([]*domain.Booking, failover.Storage, error)
	DeleteGroup(ctx context.Context, storage failover.Storage, cancelCode string) (int64, error)
}

// RoomService интерфейс сервиса каталога залов
type RoomService interface {
	ZoneForRoomID(ctx context.Context, id string) *time.Location
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
