package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	bookingRepo "github.com/GabrielEscala/Proyecto-Salas/internal/infra/storage/booking"
	"github.com/GabrielEscala/Proyecto-Salas/internal/integrations/mailer"
	roomsService "github.com/GabrielEscala/Proyecto-Salas/internal/service/rooms"
	"github.com/GabrielEscala/Proyecto-Salas/internal/timeslots"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/cancelcode"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/ptr"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// UseCase use case создания группы бронирования
type UseCase struct {
	store        BookingStore
	rooms        RoomService
	mailer       Mailer
	grid         timeslots.GridConfig
	baseURL      string
	timeProvider TimeProvider
	generateCode func() string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store BookingStore,
	rooms RoomService,
	mail Mailer,
	grid timeslots.GridConfig,
	baseURL string,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		rooms:        rooms,
		mailer:       mail,
		grid:         grid,
		baseURL:      strings.TrimRight(baseURL, "/"),
		timeProvider: &RealTimeProvider{},
		generateCode: cancelcode.Generate,
		logger:       logger,
	}
}

// Execute выполняет use case создания группы бронирования.
// Все запрошенные слоты записываются атомарно: при конфликте хотя бы
// одного слота не создаётся ни одной строки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%s, date=%s, slots=%d", req.RoomID, req.Date, len(req.Times))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем зал и его управляющий часовой пояс
	room, err := uc.rooms.ResolveRoomID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomsService.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to resolve room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to resolve room: %v", ErrInternal, err)
	}
	loc := uc.rooms.GoverningZone(room.Group)
	now := uc.timeProvider.Now()

	// 3. Нормализуем запрошенные слоты: сортировка и дедупликация
	times := timeslots.DedupTimes(req.Times)

	// 4. Дата и слоты не должны быть в прошлом, слоты лежат на сетке
	if timeslots.IsDateBeforeToday(req.Date, now, loc) {
		uc.logger.Warn("CreateBooking: date=%s is in the past", req.Date)
		return nil, ErrInvalidDate
	}
	for _, t := range times {
		if !uc.grid.Contains(t) {
			uc.logger.Warn("CreateBooking: time=%s is off the slot grid", t)
			return nil, fmt.Errorf("%w: %s", ErrInvalidTimeSlot, t)
		}
		if timeslots.IsSlotInPast(req.Date, t, now, loc) {
			uc.logger.Warn("CreateBooking: slot %s %s already started", req.Date, t)
			return nil, fmt.Errorf("%w: %s", ErrSlotInPast, t)
		}
	}

	// 5. Ищем конфликты с существующими бронями зала
	existing, err := uc.store.GetByRoomAndDate(ctx, room.ID, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get bookings for room=%s date=%s: %v", room.ID, req.Date, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	occupied := occupiedTimes(existing)

	if conflicts := timeslots.FindConflicts(times, occupied); len(conflicts) > 0 {
		uc.logger.Warn("CreateBooking: %d conflicting slots for room=%s date=%s", len(conflicts), room.ID, req.Date)
		return nil, uc.conflictError(room.ID, req.Date, conflicts, existing, occupied, now, loc)
	}

	// 6. Собираем строки группы: общий код, общие данные на каждой строке
	code := uc.generateCode()
	var notes *string
	if composed := domain.ComposeNotes(req.Company, req.Clients); composed != "" {
		notes = ptr.Ptr(composed)
	}
	var email *string
	if req.Email != "" {
		email = ptr.Ptr(strings.TrimSpace(req.Email))
	}

	rows := make([]*domain.Booking, 0, len(times))
	for _, t := range times {
		rows = append(rows, &domain.Booking{
			RoomID:     room.ID,
			RoomName:   room.Name,
			Date:       req.Date,
			Time:       t,
			FirstName:  strings.TrimSpace(req.FirstName),
			LastName:   strings.TrimSpace(req.LastName),
			Email:      email,
			Notes:      notes,
			CancelCode: code,
		})
	}

	// 7. Атомарная запись группы; проигранная гонка отдаётся как конфликт
	created, storage, err := uc.store.CreateGroup(ctx, rows)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: lost slot race for room=%s date=%s", room.ID, req.Date)
			return nil, uc.conflictError(room.ID, req.Date, times, existing, append(occupied, times...), now, loc)
		}
		uc.logger.Error("CreateBooking: failed to create group: %v", err)
		return nil, fmt.Errorf("%w: failed to create group: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created %d rows, code=%s, storage=%s", len(created), code, storage)

	// 8. Письмо подтверждения; почта никогда не откатывает бронь
	timeRange := uc.timeRange(times)
	cancelURL := uc.baseURL + "/manage/" + code

	emailStatus := mailer.StatusSkipped
	if email != nil {
		emailStatus = uc.mailer.SendBookingConfirmation(ctx, mailer.Confirmation{
			To:         *email,
			FirstName:  req.FirstName,
			RoomName:   room.Name,
			Date:       req.Date,
			TimeRange:  timeRange,
			CancelCode: code,
			CancelURL:  cancelURL,
		})
	}

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
		Rows:        respRows,
		CancelCode:  code,
		CancelURL:   cancelURL,
		TimeRange:   timeRange,
		Storage:     string(storage),
		EmailStatus: string(emailStatus),
	}, nil
}

// conflictError собирает структурированную ошибку конфликта: кто держит
// каждый слот и подсказка следующего свободного после первого конфликта
func (uc *UseCase) conflictError(roomID, date string, conflicts []types.TimeString, existing []*domain.Booking, occupied []types.TimeString, now time.Time, loc *time.Location) error {
	suggestion := timeslots.NextAvailableSlot(uc.grid, occupied, date, conflicts[0], now, loc)
	return &domain.SlotConflictError{
		RoomID:     roomID,
		Date:       date,
		Conflicts:  domain.ConflictsFromRows(conflicts, existing),
		Suggestion: suggestion,
	}
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

// occupiedTimes извлекает занятые слоты из строк бронирований
func occupiedTimes(rows []*domain.Booking) []types.TimeString {
	out := make([]types.TimeString, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Time)
	}
	return out
}
