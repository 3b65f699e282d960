package rooms

import "errors"

var (
	// ErrNotFound возвращается, когда зал не найден
	ErrNotFound = errors.New("rooms.repository: room not found")

	// ErrDuplicateName возвращается при попытке создать зал с занятым именем
	ErrDuplicateName = errors.New("rooms.repository: room name already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rooms.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rooms.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rooms.repository: failed to scan row")
)
