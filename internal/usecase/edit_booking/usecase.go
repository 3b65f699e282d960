package edit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	bookingRepo "github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/booking"
	roomsService "github.com/GabrielEscala/Proyecto-Salas/internal/service/rooms"
	"github.com/GabrielEscala/Proyecto-Salas/internal/timeslots"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/ptr"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// UseCase use case изменения группы бронирования
type UseCase struct {
	store        BookingStore
	rooms        RoomService
	grid         timeslots.GridConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store BookingStore,
	rooms RoomService,
	grid timeslots.GridConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		rooms:        rooms,
		grid:         grid,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case изменения группы бронирования.
// Группа заменяется целиком с сохранением кода управления; собственные
// строки группы не считаются конфликтами при переносе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EditBooking: code=%s, room=%s, date=%s, slots=%d",
		req.CancelCode, req.RoomID, req.Date, len(req.Times))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EditBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Находим группу и хранилище, в котором она лежит
	group, storage, err := uc.store.GetGroup(ctx, req.CancelCode)
	if err != nil {
		uc.logger.Error("EditBooking: failed to get group: %v", err)
		return nil, fmt.Errorf("%w: failed to get group: %v", ErrInternal, err)
	}
	if len(group) == 0 {
		uc.logger.Warn("EditBooking: group not found")
		return nil, ErrBookingNotFound
	}
	reference := group[0]

	// 3. Целевой зал: из запроса либо прежний
	targetRoomID := req.RoomID
	if targetRoomID == "" {
		targetRoomID = reference.RoomID
	}
	room, err := uc.rooms.ResolveRoomID(ctx, targetRoomID)
	if err != nil {
		if errors.Is(err, roomsService.ErrRoomNotFound) {
			uc.logger.Warn("EditBooking: room id=%s not found", targetRoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("EditBooking: failed to resolve room id=%s: %v", targetRoomID, err)
		return nil, fmt.Errorf("%w: failed to resolve room: %v", ErrInternal, err)
	}
	loc := uc.rooms.GoverningZone(room.Group)
	now := uc.timeProvider.Now()

	// 4. Прошедшую группу изменить нельзя: все её слоты уже начались
	if groupFullyPast(group, now, loc) {
		uc.logger.Warn("EditBooking: group code=%s already past", req.CancelCode)
		return nil, ErrAlreadyPast
	}

	// 5. Новые дата и слоты не в прошлом, слоты лежат на сетке
	times := timeslots.DedupTimes(req.Times)
	if timeslots.IsDateBeforeToday(req.Date, now, loc) {
		uc.logger.Warn("EditBooking: date=%s is in the past", req.Date)
		return nil, ErrInvalidDate
	}
	for _, t := range times {
		if !uc.grid.Contains(t) {
			uc.logger.Warn("EditBooking: time=%s is off the slot grid", t)
			return nil, fmt.Errorf("%w: %s", ErrInvalidTimeSlot, t)
		}
		if timeslots.IsSlotInPast(req.Date, t, now, loc) {
			uc.logger.Warn("EditBooking: slot %s %s already started", req.Date, t)
			return nil, fmt.Errorf("%w: %s", ErrSlotInPast, t)
		}
	}

	// 6. Конфликты: брони целевого зала без собственных строк группы
	existing, err := uc.store.GetByRoomAndDate(ctx, room.ID, req.Date)
	if err != nil {
		uc.logger.Error("EditBooking: failed to get bookings for room=%s date=%s: %v", room.ID, req.Date, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	foreign := make([]*domain.Booking, 0, len(existing))
	occupied := make([]types.TimeString, 0, len(existing))
	for _, b := range existing {
		if b.CancelCode == req.CancelCode {
			continue
		}
		foreign = append(foreign, b)
		occupied = append(occupied, b.Time)
	}

	if conflicts := timeslots.FindConflicts(times, occupied); len(conflicts) > 0 {
		uc.logger.Warn("EditBooking: %d conflicting slots for room=%s date=%s", len(conflicts), room.ID, req.Date)
		suggestion := timeslots.NextAvailableSlot(uc.grid, occupied, req.Date, conflicts[0], now, loc)
		return nil, &domain.SlotConflictError{
			RoomID:     room.ID,
			Date:       req.Date,
			Conflicts:  domain.ConflictsFromRows(conflicts, foreign),
			Suggestion: suggestion,
		}
	}

	// 7. Собираем новые строки: данные из запроса либо прежние
	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" {
		firstName = reference.FirstName
	}
	lastName := strings.TrimSpace(req.LastName)
	if lastName == "" {
		lastName = reference.LastName
	}
	email := reference.Email
	if req.Email != "" {
		email = ptr.Ptr(strings.TrimSpace(req.Email))
	}
	notes := reference.Notes
	if composed := domain.ComposeNotes(req.Company, req.Clients); composed != "" {
		notes = ptr.Ptr(composed)
	}

	rows := make([]*domain.Booking, 0, len(times))
	for _, t := range times {
		rows = append(rows, &domain.Booking{
			RoomID:     room.ID,
			RoomName:   room.Name,
			Date:       req.Date,
			Time:       t,
			FirstName:  firstName,
			LastName:   lastName,
			Email:      email,
			Notes:      notes,
			CancelCode: req.CancelCode,
		})
	}

	// 8. Атомарная замена группы в её хранилище
	created, err := uc.store.ReplaceGroup(ctx, storage, req.CancelCode, rows)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.logger.Warn("EditBooking: lost slot race for room=%s date=%s", room.ID, req.Date)
			suggestion := timeslots.NextAvailableSlot(uc.grid, append(occupied, times...), req.Date, times[0], now, loc)
			return nil, &domain.SlotConflictError{
				RoomID:     room.ID,
				Date:       req.Date,
				Conflicts:  domain.ConflictsFromRows(times, foreign),
				Suggestion: suggestion,
			}
		}
		uc.logger.Error("EditBooking: failed to replace group: %v", err)
		return nil, fmt.Errorf("%w: failed to replace group: %v", ErrInternal, err)
	}

	uc.logger.Info("EditBooking: replaced group code=%s with %d rows in %s storage",
		req.CancelCode, len(created), storage)

	// 9. Конвертируем в response
	respRows := make([]Row, 0, len(created))
	for _, b := range created {
		respRows = append(respRows, Row{
			ID:       b.ID,
			RoomID:   b.RoomID,
			RoomName: b.RoomName,
			Date:     b.Date,
			Time:     b.Time,
			EndTime:  uc.grid.SlotEnd(b.Time),
		})
	}

	return &Response{
		Rows:       respRows,
		CancelCode: req.CancelCode,
		TimeRange:  uc.timeRange(times),
		Storage:    string(storage),
	}, nil
}

// groupFullyPast возвращает true, когда все слоты группы уже начались
func groupFullyPast(group []*domain.Booking, now time.Time, loc *time.Location) bool {
	for _, b := range group {
		if !timeslots.IsSlotInPast(b.Date, b.Time, now, loc) {
			return false
		}
	}
	return true
}

// timeRange формирует человекочитаемый диапазон группы
func (uc *UseCase) timeRange(times []types.TimeString) string {
	if len(times) == 0 {
		return ""
	}
	first := times[0]
	last := uc.grid.SlotEnd(times[len(times)-1])
	return first.Format12h() + " – " + last.Format12h()
}
