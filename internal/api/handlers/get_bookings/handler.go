package get_bookings

import (
	"errors"
	"net/http"

	"github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers"
	bookingsService "github.com/GabrielEscala/Proyecto-Salas/internal/service/bookings"
)

const (
	msgMissingFilter   = "se requiere el parámetro date o cancelCode"
	msgInvalidInput    = "parámetros de búsqueda inválidos"
	msgBookingNotFound = "no se encontró una reserva con ese código"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?date=YYYY-MM-DD&roomId= | ?cancelCode=CXL-XXXXXXXX
// С параметром grouped=true строки дня сворачиваются в блоки.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date := q.Get("date")
	code := q.Get("cancelCode")

	switch {
	case code != "":
		result, err := h.service.ListByCode(r.Context(), code)
		if err != nil {
			h.respondServiceError(w, err)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, result)

	case date != "" && q.Get("grouped") == "true":
		result, err := h.service.Blocks(r.Context(), date)
		if err != nil {
			h.respondServiceError(w, err)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, result)

	case date != "":
		result, err := h.service.ListByDate(r.Context(), date, q.Get("roomId"))
		if err != nil {
			h.respondServiceError(w, err)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, result)

	default:
		h.logger.Warn("GET /bookings - Missing date and cancelCode filters")
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgMissingFilter)
	}
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bookingsService.ErrBookingNotFound):
		h.logger.Warn("GET /bookings - Booking not found")
		handlers.RespondNotFound(w, handlers.CodeBookingNotFound, msgBookingNotFound)

	case errors.Is(err, bookingsService.ErrInvalidInput):
		h.logger.Warn("GET /bookings - Invalid input: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidInput)

	default:
		h.logger.Error("GET /bookings - Failed: error=%v", err)
		handlers.RespondInternalError(w)
	}
}
