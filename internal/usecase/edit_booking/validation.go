package edit_booking

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
	"github.com/GabrielEscala/Proyecto-Salas/pkg/cancelcode"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !cancelcode.IsValid(req.CancelCode) {
		return fmt.Errorf("%w: malformed cancel code", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	if len(req.Times) == 0 {
		return fmt.Errorf("%w: at least one time slot is required", ErrInvalidInput)
	}
	for _, t := range req.Times {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
		}
	}

	if req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
		}
	}

	if len(req.FirstName) > domain.MaxNameLength || len(req.LastName) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	notes := domain.ComposeNotes(req.Company, req.Clients)
	if len(notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
