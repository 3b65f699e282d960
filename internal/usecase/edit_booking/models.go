package edit_booking

import (
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// Request модель запроса на изменение группы бронирования.
// Пустой RoomID оставляет группу в прежнем зале; пустые имя и фамилия
// наследуются от существующей группы.
type Request struct {
	CancelCode string             // Код управления группой
	RoomID     string             // Новый зал (опционально)
	Date       string             // Новая дата "YYYY-MM-DD"
	Times      []types.TimeString // Новый набор слотов
	FirstName  string             // Имя (опционально)
	LastName   string             // Фамилия (опционально)
	Email      string             // Email (опционально)
	Company    string             // Компания (опционально)
	Clients    string             // Клиенты (опционально)
}

// Row одна строка изменённой группы
type Row struct {
	ID       string
	RoomID   string
	RoomName string
	Date     string
	Time     types.TimeString
	EndTime  types.TimeString
}

// Response модель ответа с изменённой группой.
// Код управления группой сохраняется при любом изменении.
type Response struct {
	Rows       []Row
	CancelCode string
	TimeRange  string
	Storage    string
}
