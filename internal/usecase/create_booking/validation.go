package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.RoomID) == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
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

	if err := validatePerson(req.FirstName, req.LastName); err != nil {
		return err
	}

	if req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
		}
	}

	notes := domain.ComposeNotes(req.Company, req.Clients)
	if len(notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validatePerson проверяет имя и фамилию
func validatePerson(firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" {
		return fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(lastName) == "" {
		return fmt.Errorf("%w: last name is required", ErrInvalidInput)
	}
	if len(firstName) > domain.MaxNameLength || len(lastName) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	return nil
}
