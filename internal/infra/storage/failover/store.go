// Package failover двухуровневое хранилище бронирований: основной
// PostgreSQL с деградацией в память процесса. Деградация происходит
// на каждом вызове отдельно; бизнес-ошибки (занятый слот, не найдено)
// поднимаются наверх без переключения хранилища.
package failover

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/booking"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// Storage метка хранилища, обслужившего запрос
type Storage string

const (
	// StoragePrimary основной PostgreSQL
	StoragePrimary Storage = "postgres"
	// StorageMemory резервное хранилище в памяти
	StorageMemory Storage = "memory"
)

var (
	// ErrUnknownStorage возвращается для неизвестной метки хранилища
	ErrUnknownStorage = errors.New("failover: unknown storage")
)

// Store хранилище с переключением. primary может быть nil:
// сервис без сконфигурированной базы работает только с памятью.
type Store struct {
	primary  BookingStorage
	fallback BookingStorage
	log      Logger
}

// New создает хранилище с переключением
func New(primary, fallback BookingStorage, log Logger) *Store {
	return &Store{primary: primary, fallback: fallback, log: log}
}

// isBusinessErr отличает бизнес-ошибки от инфраструктурных.
// Бизнес-ошибка означает, что хранилище работает и ответило по существу.
func isBusinessErr(err error) bool {
	return errors.Is(err, booking.ErrSlotTaken) || errors.Is(err, booking.ErrNotFound)
}

// CreateGroup создает группу бронирования. При инфраструктурной ошибке
// основного хранилища группа записывается в память.
func (s *Store) CreateGroup(ctx context.Context, rows []*domain.Booking) ([]*domain.Booking, Storage, error) {
	if s.primary != nil {
		created, err := s.primary.CreateGroup(ctx, rows)
		if err == nil {
			return created, StoragePrimary, nil
		}
		if isBusinessErr(err) {
			return nil, StoragePrimary, err
		}
		s.log.Warn("failover: primary CreateGroup failed, degrading to memory: %v", err)
	}

	created, err := s.fallback.CreateGroup(ctx, rows)
	if err != nil {
		return nil, StorageMemory, err
	}
	return created, StorageMemory, nil
}

// GetGroup находит группу по коду отмены и сообщает, в каком хранилище
// она лежит. Пустой результат основного хранилища не считается ответом:
// группа могла быть записана в память во время сбоя.
func (s *Store) GetGroup(ctx context.Context, cancelCode string) ([]*domain.Booking, Storage, error) {
	if s.primary != nil {
		rows, err := s.primary.GetByCancelCode(ctx, cancelCode)
		if err == nil && len(rows) > 0 {
			return rows, StoragePrimary, nil
		}
		if err != nil && !isBusinessErr(err) {
			s.log.Warn("failover: primary GetGroup failed, reading memory: %v", err)
		}
	}

	rows, err := s.fallback.GetByCancelCode(ctx, cancelCode)
	if err != nil {
		return nil, StorageMemory, err
	}
	return rows, StorageMemory, nil
}

// ReplaceGroup заменяет строки группы в хранилище, где группа была найдена
func (s *Store) ReplaceGroup(ctx context.Context, storage Storage, cancelCode string, rows []*domain.Booking) ([]*domain.Booking, error) {
	target, err := s.pick(storage)
	if err != nil {
		return nil, err
	}
	return target.ReplaceGroup(ctx, cancelCode, rows)
}

// DeleteGroup удаляет строки группы в хранилище, где группа была найдена
func (s *Store) DeleteGroup(ctx context.Context, storage Storage, cancelCode string) (int64, error) {
	target, err := s.pick(storage)
	if err != nil {
		return 0, err
	}
	return target.DeleteByCancelCode(ctx, cancelCode)
}

func (s *Store) pick(storage Storage) (BookingStorage, error) {
	switch storage {
	case StoragePrimary:
		if s.primary == nil {
			return nil, fmt.Errorf("%w: primary not configured", ErrUnknownStorage)
		}
		return s.primary, nil
	case StorageMemory:
		return s.fallback, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, storage)
	}
}

// GetByRoomAndDate возвращает брони зала на дату из обоих хранилищ.
// Проверка конфликтов обязана видеть и строки, записанные в память
// во время сбоя основного хранилища.
func (s *Store) GetByRoomAndDate(ctx context.Context, roomID, date string) ([]*domain.Booking, error) {
	return s.merged(ctx, "GetByRoomAndDate", func(st BookingStorage) ([]*domain.Booking, error) {
		return st.GetByRoomAndDate(ctx, roomID, date)
	}, byTimeAsc)
}

// GetByDate возвращает брони на дату по всем залам из обоих хранилищ
func (s *Store) GetByDate(ctx context.Context, date string) ([]*domain.Booking, error) {
	return s.merged(ctx, "GetByDate", func(st BookingStorage) ([]*domain.Booking, error) {
		return st.GetByDate(ctx, date)
	}, byTimeAsc)
}

// GetUpcoming возвращает предстоящие брони даты из обоих хранилищ
func (s *Store) GetUpcoming(ctx context.Context, filter domain.UpcomingFilter) ([]*domain.Booking, error) {
	return s.merged(ctx, "GetUpcoming", func(st BookingStorage) ([]*domain.Booking, error) {
		return st.GetUpcoming(ctx, filter)
	}, byTimeAsc)
}

// GetByRange возвращает брони за период из обоих хранилищ
func (s *Store) GetByRange(ctx context.Context, filter domain.HistoryFilter) ([]*domain.Booking, error) {
	return s.merged(ctx, "GetByRange", func(st BookingStorage) ([]*domain.Booking, error) {
		return st.GetByRange(ctx, filter)
	}, byDateDescTimeAsc)
}

// FindByPersonAndSlot ищет строки по имени и слоту в обоих хранилищах
func (s *Store) FindByPersonAndSlot(ctx context.Context, firstName, lastName, date string, t types.TimeString) ([]*domain.Booking, Storage, error) {
	if s.primary != nil {
		rows, err := s.primary.GetByPersonAndSlot(ctx, firstName, lastName, date, t)
		if err == nil && len(rows) > 0 {
			return rows, StoragePrimary, nil
		}
		if err != nil && !isBusinessErr(err) {
			s.log.Warn("failover: primary FindByPersonAndSlot failed, reading memory: %v", err)
		}
	}

	rows, err := s.fallback.GetByPersonAndSlot(ctx, firstName, lastName, date, t)
	if err != nil {
		return nil, StorageMemory, err
	}
	return rows, StorageMemory, nil
}

// merged объединяет результаты обоих хранилищ с дедупликацией.
// Ошибка основного хранилища деградирует вызов до памяти; ошибка
// памяти невозможна по построению, но пробрасывается.
func (s *Store) merged(ctx context.Context, op string, query func(BookingStorage) ([]*domain.Booking, error), less lessFunc) ([]*domain.Booking, error) {
	var combined []*domain.Booking

	if s.primary != nil {
		rows, err := query(s.primary)
		if err != nil {
			if isBusinessErr(err) {
				return nil, err
			}
			s.log.Warn("failover: primary %s failed, reading memory: %v", op, err)
		} else {
			combined = append(combined, rows...)
		}
	}

	rows, err := query(s.fallback)
	if err != nil {
		return nil, err
	}
	combined = append(combined, rows...)

	return dedupe(combined, less), nil
}

type lessFunc func(a, b *domain.Booking) bool

func byTimeAsc(a, b *domain.Booking) bool {
	return a.Time.IsBefore(b.Time)
}

func byDateDescTimeAsc(a, b *domain.Booking) bool {
	if a.Date != b.Date {
		return a.Date > b.Date
	}
	return a.Time.IsBefore(b.Time)
}

// dedupe убирает дубликаты строк, видимых в обоих хранилищах.
// Ключ — зал, дата, время и код отмены.
func dedupe(rows []*domain.Booking, less lessFunc) []*domain.Booking {
	seen := make(map[string]struct{}, len(rows))
	out := make([]*domain.Booking, 0, len(rows))
	for _, r := range rows {
		key := r.RoomID + "|" + r.Date + "|" + string(r.Time) + "|" + r.CancelCode
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
