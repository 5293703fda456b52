package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidInput возвращается при некорректном идентификаторе сессии
	ErrInvalidInput = errors.New("invalid input data")
)
