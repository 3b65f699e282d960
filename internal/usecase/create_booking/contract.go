package create_booking

import (
	"context"
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/failover"
	"github.com/GabrielEscala/Proyecto-Salas/internal/integrations/mailer"
)

// BookingStore интерфейс хранилища бронирований с переключением
type BookingStore interface {
	CreateGroup(ctx context.Context, rows []*domain.Booking) ([]*domain.Booking, failover.Storage, error)
	GetByRoomAndDate(ctx context.Context, roomID, date string) ([]*domain.Booking, error)
}

// RoomService интерфейс сервиса каталога залов
type RoomService interface {
	ResolveRoomID(ctx context.Context, id string) (*domain.Room, error)
	GoverningZone(group domain.RoomGroup) *time.Location
}

// Mailer интерфейс отправки письма подтверждения
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, conf mailer.Confirmation) mailer.Status
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
