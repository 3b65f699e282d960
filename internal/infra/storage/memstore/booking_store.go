// Package memstore резервное хранилище в памяти процесса.
// Используется, когда PostgreSQL не сконфигурирован или недоступен;
// данные живут до перезапуска процесса.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/booking"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// BookingStore потокобезопасное хранилище бронирований в памяти.
// Возвращает те же сентинельные ошибки, что и репозиторий PostgreSQL,
// поэтому вызывающий код не различает хранилища по типам ошибок.
type BookingStore struct {
	mu   sync.Mutex
	rows []domain.Booking
}

// NewBookingStore создает пустое хранилище
func NewBookingStore() *BookingStore {
	return &BookingStore{}
}

// CreateGroup атомарно создаёт все строки группы.
// При конфликте слота не записывается ни одна строка.
func (s *BookingStore) CreateGroup(_ context.Context, rows []*domain.Booking) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(rows)
}

// ReplaceGroup атомарно заменяет строки группы cancelCode новыми.
// При конфликте старые строки остаются нетронутыми.
func (s *BookingStore) ReplaceGroup(_ context.Context, cancelCode string, rows []*domain.Booking) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.rows[:0:0]
	for _, r := range s.rows {
		if r.CancelCode != cancelCode {
			kept = append(kept, r)
		}
	}
	saved := s.rows
	s.rows = kept

	created, err := s.insertLocked(rows)
	if err != nil {
		s.rows = saved
		return nil, err
	}
	return created, nil
}

func (s *BookingStore) insertLocked(rows []*domain.Booking) ([]*domain.Booking, error) {
	for _, b := range rows {
		for i := range s.rows {
			if s.rows[i].RoomID == b.RoomID && s.rows[i].Date == b.Date && s.rows[i].Time == b.Time {
				return nil, booking.ErrSlotTaken
			}
		}
	}

	created := make([]*domain.Booking, 0, len(rows))
	for _, b := range rows {
		row := *b
		row.ID = uuid.NewString()
		if row.CreatedAt.IsZero() {
			row.CreatedAt = time.Now().UTC()
		}
		s.rows = append(s.rows, row)
		copied := row
		created = append(created, &copied)
	}
	return created, nil
}

// GetByCancelCode возвращает строки группы бронирования
func (s *BookingStore) GetByCancelCode(_ context.Context, cancelCode string) ([]*domain.Booking, error) {
	return s.collect(func(b *domain.Booking) bool {
		return b.CancelCode == cancelCode
	}, byDateThenTime), nil
}

// GetByRoomAndDate возвращает брони зала на дату
func (s *BookingStore) GetByRoomAndDate(_ context.Context, roomID, date string) ([]*domain.Booking, error) {
	return s.collect(func(b *domain.Booking) bool {
		return b.RoomID == roomID && b.Date == date
	}, byTime), nil
}

// GetByDate возвращает все брони на дату
func (s *BookingStore) GetByDate(_ context.Context, date string) ([]*domain.Booking, error) {
	return s.collect(func(b *domain.Booking) bool {
		return b.Date == date
	}, byTime), nil
}

// GetUpcoming возвращает брони даты начиная со времени FromTime включительно
func (s *BookingStore) GetUpcoming(_ context.Context, filter domain.UpcomingFilter) ([]*domain.Booking, error) {
	return s.collect(func(b *domain.Booking) bool {
		if b.Date != filter.Date || b.Time.IsBefore(filter.FromTime) {
			return false
		}
		if filter.RoomID != nil && b.RoomID != *filter.RoomID {
			return false
		}
		return true
	}, byTime), nil
}

// GetByRange возвращает брони за период, дата по убыванию
func (s *BookingStore) GetByRange(_ context.Context, filter domain.HistoryFilter) ([]*domain.Booking, error) {
	return s.collect(func(b *domain.Booking) bool {
		if filter.FromDate != "" && b.Date < filter.FromDate {
			return false
		}
		if filter.ToDate != "" && b.Date > filter.ToDate {
			return false
		}
		if filter.RoomID != nil && b.RoomID != *filter.RoomID {
			return false
		}
		return true
	}, byDateDescThenTime), nil
}

// GetByPersonAndSlot ищет строки по имени и слоту (без учета регистра)
func (s *BookingStore) GetByPersonAndSlot(_ context.Context, firstName, lastName, date string, t types.TimeString) ([]*domain.Booking, error) {
	return s.collect(func(b *domain.Booking) bool {
		return equalFold(b.FirstName, firstName) &&
			equalFold(b.LastName, lastName) &&
			b.Date == date && b.Time == t
	}, byTime), nil
}

// DeleteByCancelCode удаляет строки группы, возвращает число удалённых
func (s *BookingStore) DeleteByCancelCode(_ context.Context, cancelCode string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.rows[:0:0]
	var deleted int64
	for _, r := range s.rows {
		if r.CancelCode == cancelCode {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	if deleted == 0 {
		return 0, booking.ErrNotFound
	}
	s.rows = kept
	return deleted, nil
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

type lessFunc func(a, b *domain.Booking) bool

func byTime(a, b *domain.Booking) bool {
	return a.Time.IsBefore(b.Time)
}

func byDateThenTime(a, b *domain.Booking) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	return a.Time.IsBefore(b.Time)
}

func byDateDescThenTime(a, b *domain.Booking) bool {
	if a.Date != b.Date {
		return a.Date > b.Date
	}
	return a.Time.IsBefore(b.Time)
}

func (s *BookingStore) collect(match func(*domain.Booking) bool, less lessFunc) []*domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Booking, 0)
	for i := range s.rows {
		if match(&s.rows[i]) {
			row := s.rows[i]
			out = append(out, &row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
