package cancel_booking

import (
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// Request модель запроса на отмену группы бронирования.
// Группа определяется кодом управления либо, если код утерян,
// именем, фамилией, датой и временем одного из её слотов.
type Request struct {
	CancelCode string
	FirstName  string
	LastName   string
	Date       string // "YYYY-MM-DD"
	Time       types.TimeString
}

// Response модель ответа с отменённой группой
type Response struct {
	CancelCode     string
	CancelledCount int64
	RoomName       string
	Date           string
	Times          []types.TimeString
	Storage        string
}
