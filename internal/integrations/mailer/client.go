package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент почтового шлюза подтверждений
type Client struct {
	apiURL     string
	apiKey     string
	from       string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр почтового клиента.
// Пустой apiKey означает, что отправка отключена: Send вернёт
// StatusSkipped, и бронирование пройдёт без письма.
func NewClient(apiURL, apiKey, from string, timeout time.Duration, log Logger) *Client {
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		from:   from,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Configured возвращает true, если отправка писем настроена
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.from != ""
}

// send отправляет письмо через шлюз
func (c *Client) send(ctx context.Context, to, subject, html string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
	return nil
}

// SendBookingConfirmation отправляет письмо подтверждения бронирования.
// Ошибки почты не прерывают бронирование: результат отражается
// статусом в ответе операции.
func (c *Client) SendBookingConfirmation(ctx context.Context, conf Confirmation) Status {
	if conf.To == "" {
		return StatusSkipped
	}
	if !c.Configured() {
		c.log.Info("Mailer not configured, skipping confirmation for %s", conf.To)
		return StatusSkipped
	}

	subject := fmt.Sprintf("Reserva confirmada: %s, %s", conf.RoomName, conf.Date)
	html := confirmationHTML(conf)

	if err := c.send(ctx, conf.To, subject, html); err != nil {
		c.log.Error("Failed to send confirmation to %s: %v", conf.To, err)
		return StatusError
	}

	c.log.Info("Confirmation sent to %s (room=%s, date=%s)", conf.To, conf.RoomName, conf.Date)
	return StatusSent
}

// confirmationHTML собирает тело письма подтверждения
func confirmationHTML(conf Confirmation) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "<h2>¡Hola, %s!</h2>", conf.FirstName)
	fmt.Fprintf(&b, "<p>Tu reserva ha sido confirmada.</p>")
	fmt.Fprintf(&b, "<p><strong>Sala:</strong> %s<br>", conf.RoomName)
	fmt.Fprintf(&b, "<strong>Fecha:</strong> %s<br>", conf.Date)
	fmt.Fprintf(&b, "<strong>Horario:</strong> %s</p>", conf.TimeRange)
	fmt.Fprintf(&b, "<p><strong>Código de cancelación:</strong> %s</p>", conf.CancelCode)
	if conf.CancelURL != "" {
		fmt.Fprintf(&b, "<p>Puedes gestionar o cancelar tu reserva aquí: <a href=%q>%s</a></p>", conf.CancelURL, conf.CancelURL)
	}
	fmt.Fprintf(&b, "<p>Guarda este código: lo necesitarás para modificar o cancelar la reserva.</p>")
	return b.String()
}
