package cancel_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/cancelcode"
)

// validateRequest валидирует входные данные запроса.
// Допустимы две формы: код управления или полный набор
// имя + фамилия + дата + время.
func validateRequest(req *Request) error {
	if req.CancelCode != "" {
		if !cancelcode.IsValid(req.CancelCode) {
			return fmt.Errorf("%w: malformed cancel code", ErrInvalidInput)
		}
		return nil
	}

	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("%w: cancel code or full name is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}
	return nil
}
