package get_availability

import (
	"context"
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
)

// BookingStore интерфейс хранилища бронирований с переключением
type BookingStore interface {
	GetByRoomAndDate(ctx context.Context, roomID, date string) ([]*domain.Booking, error)
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
