package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers"
	getAvailability "github.com/GabrielEscala/Proyecto-Salas/internal/usecase/get_availability"
)

const (
	msgInvalidInput = "parámetros de disponibilidad inválidos"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	req := &getAvailability.Request{
		RoomID: vars["roomId"],
		Date:   r.URL.Query().Get("date"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{roomId}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/{roomId}/availability - Failed: room=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
