package get_history

import (
	"errors"
	"net/http"

	"github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers"
	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	bookingsService "github.com/GabrielEscala/Proyecto-Salas/internal/service/bookings"
)

const (
	msgInvalidInput = "parámetros de historial inválidos"

	// storageHeader сообщает клиенту источники данных истории
	storageHeader = "X-Storage"
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

// Handle GET /api/v1/bookings/history?from=YYYY-MM-DD&to=YYYY-MM-DD&roomId=...
// Доступ только через административную сессию.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.HistoryFilter{
		FromDate: q.Get("from"),
		ToDate:   q.Get("to"),
	}
	if roomID := q.Get("roomId"); roomID != "" {
		filter.RoomID = &roomID
	}

	result, sources, err := h.service.History(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /bookings/history - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidInput)

		default:
			h.logger.Error("GET /bookings/history - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set(storageHeader, sources)
	handlers.RespondJSON(w, http.StatusOK, result)
}
