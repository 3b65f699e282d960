package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	bookingRepo "github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/booking"
	"github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/failover"
	"github.com/GabrielEscala/Proyecto-Salas/internal/timeslots"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// UseCase use case отмены группы бронирования
type UseCase struct {
	store        BookingStore
	rooms        RoomService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store BookingStore,
	rooms RoomService,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		rooms:        rooms,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отмены группы бронирования.
// Отмена всегда затрагивает группу целиком, даже когда она найдена
// по одному слоту через фолбэк имя + дата + время.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Находим группу: по коду либо по имени и слоту
	group, storage, err := uc.locateGroup(ctx, req)
	if err != nil {
		return nil, err
	}
	code := group[0].CancelCode

	uc.logger.Info("CancelBooking: group code=%s, %d rows, storage=%s", code, len(group), storage)

	// 3. Начавшуюся группу отменить нельзя: смотрим на её первый слот
	loc := uc.rooms.ZoneForRoomID(ctx, group[0].RoomID)
	first := earliestRow(group)
	if timeslots.IsSlotInPast(first.Date, first.Time, uc.timeProvider.Now(), loc) {
		uc.logger.Warn("CancelBooking: group code=%s already started", code)
		return nil, ErrAlreadyPast
	}

	// 4. Удаляем все строки группы из её хранилища
	deleted, err := uc.store.DeleteGroup(ctx, storage, code)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to delete group code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: failed to delete group: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelBooking: cancelled %d rows, code=%s, storage=%s", deleted, code, storage)

	// 5. Конвертируем в response
	times := make([]types.TimeString, 0, len(group))
	for _, b := range group {
		times = append(times, b.Time)
	}

	return &Response{
		CancelCode:     code,
		CancelledCount: deleted,
		RoomName:       group[0].RoomName,
		Date:           group[0].Date,
		Times:          times,
		Storage:        string(storage),
	}, nil
}

// locateGroup находит строки группы и хранилище, в котором они лежат
func (uc *UseCase) locateGroup(ctx context.Context, req *Request) ([]*domain.Booking, failover.Storage, error) {
	if req.CancelCode != "" {
		group, storage, err := uc.store.GetGroup(ctx, req.CancelCode)
		if err != nil {
			uc.logger.Error("CancelBooking: failed to get group: %v", err)
			return nil, storage, fmt.Errorf("%w: failed to get group: %v", ErrInternal, err)
		}
		if len(group) == 0 {
			uc.logger.Warn("CancelBooking: group not found by code")
			return nil, storage, ErrBookingNotFound
		}
		return group, storage, nil
	}

	// Фолбэк: одна найденная строка раскрывается в её группу
	rows, storage, err := uc.store.FindByPersonAndSlot(ctx, req.FirstName, req.LastName, req.Date, req.Time)
	if err != nil {
		uc.logger.Error("CancelBooking: failed to find booking by person and slot: %v", err)
		return nil, storage, fmt.Errorf("%w: failed to find booking: %v", ErrInternal, err)
	}
	if len(rows) == 0 {
		uc.logger.Warn("CancelBooking: no booking for person=%s %s slot=%s %s",
			req.FirstName, req.LastName, req.Date, req.Time)
		return nil, storage, ErrBookingNotFound
	}

	group, storage, err := uc.store.GetGroup(ctx, rows[0].CancelCode)
	if err != nil {
		uc.logger.Error("CancelBooking: failed to expand group: %v", err)
		return nil, storage, fmt.Errorf("%w: failed to expand group: %v", ErrInternal, err)
	}
	if len(group) == 0 {
		return nil, storage, ErrBookingNotFound
	}
	return group, storage, nil
}

// earliestRow возвращает хронологически первую строку группы
func earliestRow(group []*domain.Booking) *domain.Booking {
	first := group[0]
	for _, b := range group[1:] {
		if b.Date < first.Date || (b.Date == first.Date && b.Time.IsBefore(first.Time)) {
			first = b
		}
	}
	return first
}
