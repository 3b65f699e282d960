package rooms

import (
	"context"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
)

// RoomStorage операции каталога залов.
// Реализуется репозиторием PostgreSQL и хранилищем в памяти.
type RoomStorage interface {
	GetAll(ctx context.Context) ([]*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	GetByName(ctx context.Context, name string) (*domain.Room, error)
	Create(ctx context.Context, name string, group domain.RoomGroup) (*domain.Room, error)
	Rename(ctx context.Context, id, newName string) error
	UpdateGroup(ctx context.Context, id string, group domain.RoomGroup) error
}

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
