package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда группа бронирования не найдена
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrAlreadyPast возвращается при попытке отменить прошедшее бронирование
	ErrAlreadyPast = errors.New("cancel_booking: booking already past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
