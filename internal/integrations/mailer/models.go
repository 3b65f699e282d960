package mailer

// Status итог отправки письма подтверждения.
// Бронирование никогда не падает из-за почты: статус лишь сообщает
// пользователю, ждать письма или нет.
type Status string

const (
	// StatusSent письмо принято шлюзом
	StatusSent Status = "sent"
	// StatusSkipped отправка не настроена или адрес не указан
	StatusSkipped Status = "skipped"
	// StatusError шлюз недоступен или отклонил письмо
	StatusError Status = "error"
)

// sendRequest тело запроса почтового шлюза
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Confirmation данные письма подтверждения бронирования
type Confirmation struct {
	To         string
	FirstName  string
	RoomName   string
	Date       string // YYYY-MM-DD
	TimeRange  string // "9:00 a. m. – 10:30 a. m."
	CancelCode string
	CancelURL  string
}
