package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers"
	cancelBooking "github.com/GabrielEscala/Proyecto-Salas/internal/usecase/cancel_booking"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidTime        = "formato de hora inválido, se espera HH:MM"
	msgInvalidInput       = "datos de cancelación inválidos"
	msgBookingNotFound    = "no se encontró la reserva"
	msgAlreadyPast        = "la reserva ya pasó y no puede cancelarse"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/cancel - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/cancel - Booking not found")
			handlers.RespondNotFound(w, handlers.CodeBookingNotFound, msgBookingNotFound)

		case errors.Is(err, cancelBooking.ErrAlreadyPast):
			h.logger.Warn("POST /bookings/cancel - Booking already past")
			handlers.RespondUnprocessable(w, handlers.CodeAlreadyPast, msgAlreadyPast)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/cancel - Failed to cancel booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/cancel - Booking cancelled: code=%s, rows=%d, storage=%s",
		result.CancelCode, result.CancelledCount, result.Storage)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
