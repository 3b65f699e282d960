package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/rooms"
)

// RoomStore потокобезопасный каталог залов в памяти.
// Тот же набор методов и сентинельные ошибки, что и у репозитория
// PostgreSQL, поэтому сервис каталога работает с любым из хранилищ.
type RoomStore struct {
	mu    sync.Mutex
	rooms []domain.Room
}

// NewRoomStore создает пустой каталог
func NewRoomStore() *RoomStore {
	return &RoomStore{}
}

// GetAll возвращает все залы, отсортированные по имени
func (s *RoomStore) GetAll(_ context.Context) ([]*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Room, 0, len(s.rooms))
	for i := range s.rooms {
		room := s.rooms[i]
		out = append(out, &room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetByID возвращает зал по идентификатору
func (s *RoomStore) GetByID(_ context.Context, id string) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].ID == id {
			room := s.rooms[i]
			return &room, nil
		}
	}
	return nil, rooms.ErrNotFound
}

// GetByName возвращает зал по отображаемому имени
func (s *RoomStore) GetByName(_ context.Context, name string) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].Name == name {
			room := s.rooms[i]
			return &room, nil
		}
	}
	return nil, rooms.ErrNotFound
}

// Create создает зал с новым идентификатором
func (s *RoomStore) Create(_ context.Context, name string, group domain.RoomGroup) (*domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].Name == name {
			return nil, rooms.ErrDuplicateName
		}
	}
	room := domain.Room{ID: uuid.NewString(), Name: name, Group: group}
	s.rooms = append(s.rooms, room)
	return &room, nil
}

// Rename переименовывает зал
func (s *RoomStore) Rename(_ context.Context, id, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].ID != id && s.rooms[i].Name == newName {
			return rooms.ErrDuplicateName
		}
	}
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			s.rooms[i].Name = newName
			return nil
		}
	}
	return rooms.ErrNotFound
}

// UpdateGroup проставляет группу каталога
func (s *RoomStore) UpdateGroup(_ context.Context, id string, group domain.RoomGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rooms {
		if s.rooms[i].ID == id {
			s.rooms[i].Group = group
			return nil
		}
	}
	return rooms.ErrNotFound
}
