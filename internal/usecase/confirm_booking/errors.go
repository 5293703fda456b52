package confirm_booking

import "errors"

var (
	// ErrAborted возвращается, если обработка прервана отменой контекста
	ErrAborted = errors.New("confirmation aborted")

	// ErrNumberExhausted возвращается, когда не удалось подобрать свободный номер подтверждения
	ErrNumberExhausted = errors.New("failed to allocate a unique confirmation number")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
