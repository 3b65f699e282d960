package get_rooms

import (
	"net/http"

	"github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers"
	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
)

// RoomResponse HTTP модель зала
type RoomResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group"`
}

// RoomListResponse HTTP response model
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

type Handler struct {
	rooms  RoomService
	logger Logger
}

func NewHandler(rooms RoomService, logger Logger) *Handler {
	return &Handler{
		rooms:  rooms,
		logger: logger,
	}
}

// Handle GET /api/v1/rooms?group=standard|event|alternate|all
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	group := r.URL.Query().Get("group")

	list, err := h.rooms.List(r.Context(), group)
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: group=%q, error=%v", group, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := RoomListResponse{Rooms: make([]RoomResponse, 0, len(list))}
	for _, room := range list {
		resp.Rooms = append(resp.Rooms, fromDomainRoom(room))
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func fromDomainRoom(room *domain.Room) RoomResponse {
	return RoomResponse{
		ID:    room.ID,
		Name:  room.Name,
		Group: string(room.Group),
	}
}
