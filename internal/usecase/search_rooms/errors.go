package search_rooms

import "errors"

var (
	// ErrInvalidInput возвращается при невалидном запросе на проживание
	ErrInvalidInput = errors.New("invalid stay query")

	// ErrRoomNotFound возвращается, когда номер отсутствует в каталоге
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomCannotHost возвращается, когда номер недоступен или не вмещает гостей
	ErrRoomCannotHost = errors.New("room cannot host the requested stay")

	// ErrAborted возвращается, если поиск прерван отменой контекста
	ErrAborted = errors.New("room search aborted")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
