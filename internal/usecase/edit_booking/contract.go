package edit_booking

import (
	"context"
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/failover"
)

// BookingStore интерфейс хранилища бронирований с переключением.
// Замена группы выполняется в том хранилище, где группа была найдена.
type BookingStore interface {
	GetGroup(ctx context.Context, cancelCode string) ([]*domain.Booking, failover.Storage, error)
	GetByRoomAndDate(ctx context.Context, roomID, date string) ([]*domain.Booking, error)
	ReplaceGroup(ctx context.Context, storage failover.Storage, cancelCode string, rows []*domain.Booking) ([]*domain.Booking, error)
}

// RoomService интерфейс сервиса каталога залов
type RoomService interface {
	ResolveRoomID(ctx context.Context, id string) (*domain.Room, error)
	GoverningZone(group domain.RoomGroup) *time.Location
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
