package create_booking

import (
	"github.com/GabrielEscala/Proyecto-Salas/pkg/types"
)

// Request модель запроса на создание группы бронирования
type Request struct {
	RoomID    string             // Идентификатор зала (включая синтетические ID засева)
	Date      string             // Дата бронирования "YYYY-MM-DD"
	Times     []types.TimeString // Запрошенные слоты (могут содержать дубликаты)
	FirstName string             // Имя
	LastName  string             // Фамилия
	Email     string             // Email для подтверждения (опционально)
	Company   string             // Компания (опционально)
	Clients   string             // Клиенты, с которыми проходит встреча (опционально)
}

// Row одна созданная строка бронирования
type Row struct {
	ID       string
	RoomID   string
	RoomName string
	Date     string
	Time     types.TimeString
	EndTime  types.TimeString
}

// Response модель ответа с созданной группой
type Response struct {
	Rows       []Row
	CancelCode string // Общий код управления группой
	CancelURL  string // Ссылка на страницу управления бронированием
	TimeRange  string // "9:00 a. m. – 10:30 a. m."
	Storage    string // Хранилище, принявшее запись
	EmailStatus string // sent | skipped | error
}
