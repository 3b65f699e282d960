package get_upcoming

import (
	"errors"
	"net/http"

	"github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers"
	bookingsService "github.com/GabrielEscala/Proyecto-Salas/internal/service/bookings"
)

const (
	msgMissingParams = "los parámetros date y currentTime son obligatorios"
	msgInvalidInput  = "parámetros de búsqueda inválidos"
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

// Handle GET /api/v1/bookings/upcoming?date=YYYY-MM-DD&currentTime=HH:MM&roomId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date := q.Get("date")
	currentTime := q.Get("currentTime")

	if date == "" || currentTime == "" {
		h.logger.Warn("GET /bookings/upcoming - Missing date or currentTime")
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgMissingParams)
		return
	}

	result, err := h.service.ListUpcoming(r.Context(), date, currentTime, q.Get("roomId"))
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			h.logger.Warn("GET /bookings/upcoming - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidInput)
			return
		}
		h.logger.Error("GET /bookings/upcoming - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
