package room

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден в каталоге
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrReadCatalog возвращается при ошибке чтения файла каталога
	ErrReadCatalog = errors.New("room.repository: failed to read catalog")

	// ErrDecodeCatalog возвращается при ошибке разбора файла каталога
	ErrDecodeCatalog = errors.New("room.repository: failed to decode catalog")

	// ErrInvalidRoom возвращается, когда запись каталога не проходит проверку
	ErrInvalidRoom = errors.New("room.repository: invalid room")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("room.repository: failed to scan row")
)
