package get_confirmation

import "errors"

var (
	// ErrInvalidInput возвращается при пустом номере подтверждения
	ErrInvalidInput = errors.New("invalid input data")

	// ErrConfirmationNotFound возвращается, когда подтверждение не найдено
	ErrConfirmationNotFound = errors.New("confirmation not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
