package get_rooms

import (
	"context"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
)

type RoomService interface {
	List(ctx context.Context, group string) ([]*domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
