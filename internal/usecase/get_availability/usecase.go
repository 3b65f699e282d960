package get_availability

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	roomsService "github.com/GabrielEscala/Proyecto-Salas/internal/service/rooms"
	"github.com/GabrielEscala/Proyecto-Salas/internal/timeslots"
)

// UseCase use case получения сетки доступности зала
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

// Execute выполняет use case получения сетки доступности.
// Занятый слот остаётся reserved, даже если он уже в прошлом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем зал; неизвестный зал даёт полностью invalid сетку
	hasRoom := true
	roomID := req.RoomID
	roomName := ""
	loc := uc.rooms.GoverningZone(domain.GroupStandard)

	room, err := uc.rooms.ResolveRoomID(ctx, req.RoomID)
	switch {
	case err == nil:
		roomID = room.ID
		roomName = room.Name
		loc = uc.rooms.GoverningZone(room.Group)
	case errors.Is(err, roomsService.ErrRoomNotFound):
		uc.logger.Warn("GetAvailability: room id=%s not found, returning invalid grid", req.RoomID)
		hasRoom = false
	default:
		uc.logger.Error("GetAvailability: failed to resolve room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to resolve room: %v", ErrInternal, err)
	}

	// 3. Загружаем брони зала на дату
	var rows []*domain.Booking
	if hasRoom {
		rows, err = uc.store.GetByRoomAndDate(ctx, roomID, req.Date)
		if err != nil {
			uc.logger.Error("GetAvailability: failed to get bookings for room=%s date=%s: %v", roomID, req.Date, err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
	}
	deref := make([]domain.Booking, 0, len(rows))
	for _, r := range rows {
		deref = append(deref, *r)
	}

	// 4. Классифицируем каждый слот сетки
	now := uc.timeProvider.Now()
	states := timeslots.Classify(uc.grid, deref, req.Date, now, loc, hasRoom)
	ranges := timeslots.Ranges(uc.grid, states)

	uc.logger.Info("GetAvailability: room=%s date=%s, %d slots, %d reserved",
		roomID, req.Date, len(states), countReserved(states))

	// 5. Конвертируем в response
	resp := &Response{
		RoomID:   roomID,
		RoomName: roomName,
		Date:     req.Date,
		Slots:    make([]Slot, 0, len(states)),
		Ranges:   make([]Range, 0, len(ranges)),
	}
	for _, s := range states {
		resp.Slots = append(resp.Slots, Slot{
			Time:     s.Time.String(),
			EndTime:  uc.grid.SlotEnd(s.Time).String(),
			Status:   string(s.Status),
			Occupant: s.Occupant,
		})
	}
	for _, r := range ranges {
		resp.Ranges = append(resp.Ranges, Range{
			Start:    r.Start.String(),
			End:      r.End.String(),
			Status:   string(r.Status),
			Occupant: r.Occupant,
		})
	}
	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.RoomID) == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}
	return nil
}

// countReserved подсчитывает занятые слоты
func countReserved(states []timeslots.SlotState) int {
	n := 0
	for _, s := range states {
		if s.Status == timeslots.StatusReserved {
			n++
		}
	}
	return n
}
