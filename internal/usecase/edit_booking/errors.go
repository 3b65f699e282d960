package edit_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда группа бронирования не найдена
	ErrBookingNotFound = errors.New("edit_booking: booking not found")

	// ErrRoomNotFound возвращается, когда целевой зал не найден
	ErrRoomNotFound = errors.New("edit_booking: room not found")

	// ErrAlreadyPast возвращается при попытке изменить прошедшее бронирование
	ErrAlreadyPast = errors.New("edit_booking: booking already past")

	// ErrInvalidDate возвращается при новой дате в прошлом
	ErrInvalidDate = errors.New("edit_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время не лежит на сетке слотов
	ErrInvalidTimeSlot = errors.New("edit_booking: invalid time slot")

	// ErrSlotInPast возвращается при попытке перенести бронь на прошедший слот
	ErrSlotInPast = errors.New("edit_booking: slot already started")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("edit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("edit_booking: internal error")
)
