package health

import (
	"context"
	"net/http"
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers"
)

// Pinger проверка соединения с базой данных
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse HTTP response model
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"` // ok | degraded | unconfigured
}

type Handler struct {
	db Pinger // nil, когда база не сконфигурирована
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

// Handle GET /health
// Сервис остаётся живым и при недоступной базе: брони принимает память.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Database: "unconfigured"}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			resp.Database = "degraded"
		} else {
			resp.Database = "ok"
		}
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
