package edit_booking

import (
	"errors"
	"net/http"

	"github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers"
	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	editBooking "github.com/GabrielEscala/Proyecto-Salas/internal/usecase/edit_booking"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidTime        = "formato de hora inválido, se espera HH:MM"
	msgInvalidInput       = "datos de la reserva inválidos"
	msgBookingNotFound    = "no se encontró una reserva con ese código"
	msgRoomNotFound       = "la sala no existe"
	msgAlreadyPast        = "la reserva ya pasó y no puede modificarse"
	msgInvalidDate        = "la nueva fecha ya pasó"
	msgInvalidTimeSlot    = "el horario no pertenece a la grilla de reservas"
	msgSlotInPast         = "el horario seleccionado ya pasó"
	msgSlotConflict       = "algunos horarios ya están reservados"
)

type Handler struct {
	useCase EditBookingUseCase
	logger  Logger
}

func NewHandler(useCase EditBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/edit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EditBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/edit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/edit - Failed to parse times: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *domain.SlotConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings/edit - Slot conflict: date=%s", req.Date)
			conflicts, suggestion := handlers.ConflictPayload(conflict)
			handlers.RespondConflict(w, msgSlotConflict, conflicts, suggestion)

		case errors.Is(err, editBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/edit - Booking not found")
			handlers.RespondNotFound(w, handlers.CodeBookingNotFound, msgBookingNotFound)

		case errors.Is(err, editBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings/edit - Room not found: room=%s", req.RoomID)
			handlers.RespondNotFound(w, handlers.CodeRoomNotFound, msgRoomNotFound)

		case errors.Is(err, editBooking.ErrAlreadyPast):
			h.logger.Warn("POST /bookings/edit - Booking already past")
			handlers.RespondUnprocessable(w, handlers.CodeAlreadyPast, msgAlreadyPast)

		case errors.Is(err, editBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings/edit - Past date: date=%s", req.Date)
			handlers.RespondUnprocessable(w, handlers.CodeInvalidDate, msgInvalidDate)

		case errors.Is(err, editBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings/edit - Off-grid time: date=%s", req.Date)
			handlers.RespondUnprocessable(w, handlers.CodeOffGrid, msgInvalidTimeSlot)

		case errors.Is(err, editBooking.ErrSlotInPast):
			h.logger.Warn("POST /bookings/edit - Slot in past: date=%s", req.Date)
			handlers.RespondUnprocessable(w, handlers.CodeSlotInPast, msgSlotInPast)

		case errors.Is(err, editBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/edit - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/edit - Failed to edit booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/edit - Booking updated: code=%s, rows=%d, storage=%s",
		result.CancelCode, len(result.Rows), result.Storage)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
