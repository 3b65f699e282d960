package create_booking

import (
	"errors"
	"net/http"

	"github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers"
	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	createBooking "github.com/GabrielEscala/Proyecto-Salas/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidTime        = "formato de hora inválido, se espera HH:MM"
	msgInvalidInput       = "datos de la reserva inválidos"
	msgRoomNotFound       = "la sala no existe"
	msgInvalidDate        = "la fecha de la reserva ya pasó"
	msgInvalidTimeSlot    = "el horario no pertenece a la grilla de reservas"
	msgSlotInPast         = "el horario seleccionado ya pasó"
	msgSlotConflict       = "algunos horarios ya están reservados"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse times: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *domain.SlotConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Slot conflict: room=%s date=%s", req.RoomID, req.Date)
			conflicts, suggestion := handlers.ConflictPayload(conflict)
			handlers.RespondConflict(w, msgSlotConflict, conflicts, suggestion)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room=%s", req.RoomID)
			handlers.RespondNotFound(w, handlers.CodeRoomNotFound, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Past date: date=%s", req.Date)
			handlers.RespondUnprocessable(w, handlers.CodeInvalidDate, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Off-grid time: room=%s date=%s", req.RoomID, req.Date)
			handlers.RespondUnprocessable(w, handlers.CodeOffGrid, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrSlotInPast):
			h.logger.Warn("POST /bookings - Slot in past: room=%s date=%s", req.RoomID, req.Date)
			handlers.RespondUnprocessable(w, handlers.CodeSlotInPast, msgSlotInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room=%s date=%s, error=%v",
				req.RoomID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: code=%s, rows=%d, storage=%s",
		result.CancelCode, len(result.Rows), result.Storage)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
