package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/failover"
	"github.com/GabrielEscala/Proyecto-Salas/internal/service/bookings/models"
	"github.com/GabrielEscala/Proyecto-Salas/internal/timeslots"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/cancelcode"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// Service сервис чтения бронирований
type Service struct {
	store           BookingStore
	logger          Logger
	intervalMinutes int
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(store BookingStore, intervalMinutes int, logger Logger) *Service {
	return &Service{
		store:           store,
		logger:          logger,
		intervalMinutes: intervalMinutes,
	}
}

// ListByDate возвращает брони на дату, опционально по одному залу
func (s *Service) ListByDate(ctx context.Context, date, roomID string) (*models.BookingListResponse, error) {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		s.logger.Warn("ListByDate: invalid date=%q", date)
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}

	var rows []*domain.Booking
	var err error
	if roomID != "" {
		rows, err = s.store.GetByRoomAndDate(ctx, roomID, date)
	} else {
		rows, err = s.store.GetByDate(ctx, date)
	}
	if err != nil {
		s.logger.Error("ListByDate: storage error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: ListByDate - storage error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByDate: fetched %d bookings for date=%s", len(rows), date)
	return models.FromDomainBookingList(rows, s.intervalMinutes), nil
}

// ListByCode возвращает строки группы бронирования по коду отмены
func (s *Service) ListByCode(ctx context.Context, code string) (*models.BookingListResponse, error) {
	if !cancelcode.IsValid(code) {
		s.logger.Warn("ListByCode: malformed cancel code")
		return nil, fmt.Errorf("%w: malformed cancel code", ErrInvalidInput)
	}

	rows, storage, err := s.store.GetGroup(ctx, code)
	if err != nil {
		s.logger.Error("ListByCode: storage error: %v", err)
		return nil, fmt.Errorf("%w: ListByCode - storage error: %v", ErrInternal, err)
	}
	if len(rows) == 0 {
		return nil, ErrBookingNotFound
	}

	s.logger.Info("ListByCode: found %d rows in %s storage", len(rows), storage)
	return models.FromDomainBookingList(rows, s.intervalMinutes), nil
}

// ListUpcoming возвращает брони даты начиная со времени currentTime,
// опционально по одному залу. Оба параметра обязательны.
func (s *Service) ListUpcoming(ctx context.Context, date, currentTime, roomID string) (*models.BookingListResponse, error) {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		s.logger.Warn("ListUpcoming: invalid date=%q", date)
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}
	fromTime, err := types.NewTimeStringFromString(currentTime)
	if err != nil {
		s.logger.Warn("ListUpcoming: invalid currentTime=%q", currentTime)
		return nil, fmt.Errorf("%w: invalid current time", ErrInvalidInput)
	}

	filter := domain.UpcomingFilter{Date: date, FromTime: fromTime}
	if roomID != "" {
		filter.RoomID = &roomID
	}

	rows, err := s.store.GetUpcoming(ctx, filter)
	if err != nil {
		s.logger.Error("ListUpcoming: storage error: %v", err)
		return nil, fmt.Errorf("%w: ListUpcoming - storage error: %v", ErrInternal, err)
	}

	s.logger.Info("ListUpcoming: fetched %d bookings for date=%s from=%s", len(rows), date, fromTime)
	return models.FromDomainBookingList(rows, s.intervalMinutes), nil
}

// History возвращает брони за период из обоих хранилищ.
// Второе значение — метка источников данных для заголовка ответа.
func (s *Service) History(ctx context.Context, filter domain.HistoryFilter) (*models.BookingListResponse, string, error) {
	if filter.FromDate != "" {
		if _, err := time.Parse(domain.DateFormat, filter.FromDate); err != nil {
			return nil, "", fmt.Errorf("%w: invalid from date", ErrInvalidInput)
		}
	}
	if filter.ToDate != "" {
		if _, err := time.Parse(domain.DateFormat, filter.ToDate); err != nil {
			return nil, "", fmt.Errorf("%w: invalid to date", ErrInvalidInput)
		}
	}
	if filter.FromDate != "" && filter.ToDate != "" && filter.FromDate > filter.ToDate {
		return nil, "", fmt.Errorf("%w: from date after to date", ErrInvalidInput)
	}

	rows, err := s.store.GetByRange(ctx, filter)
	if err != nil {
		s.logger.Error("History: storage error: %v", err)
		return nil, "", fmt.Errorf("%w: History - storage error: %v", ErrInternal, err)
	}

	sources := string(failover.StoragePrimary) + "+" + string(failover.StorageMemory)
	s.logger.Info("History: fetched %d bookings (from=%s, to=%s)", len(rows), filter.FromDate, filter.ToDate)
	return models.FromDomainBookingList(rows, s.intervalMinutes), sources, nil
}

// Blocks возвращает брони на дату, свёрнутые в блоки подряд идущих
// слотов одного человека в одном зале
func (s *Service) Blocks(ctx context.Context, date string) (*models.BlockListResponse, error) {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		s.logger.Warn("Blocks: invalid date=%q", date)
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}

	rows, err := s.store.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("Blocks: storage error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: Blocks - storage error: %v", ErrInternal, err)
	}

	deref := make([]domain.Booking, 0, len(rows))
	for _, r := range rows {
		deref = append(deref, *r)
	}
	blocks := timeslots.GroupConsecutive(deref, s.intervalMinutes)

	s.logger.Info("Blocks: %d rows collapsed into %d blocks for date=%s", len(rows), len(blocks), date)
	return models.FromBlocks(blocks), nil
}
