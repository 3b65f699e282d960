package mailer

import "errors"

var (
	// ErrInternal внутренняя ошибка клиента
	ErrInternal = errors.New("mailer: internal error")

	// ErrInvalidResponse почтовый шлюз вернул неожиданный ответ
	ErrInvalidResponse = errors.New("mailer: invalid response from mail gateway")

	// ErrNotConfigured отправка писем не сконфигурирована
	ErrNotConfigured = errors.New("mailer: not configured")
)
