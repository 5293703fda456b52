package middleware

import "errors"

// ErrPanic оборачивает значение паники, не являющееся ошибкой
var ErrPanic = errors.New("middleware: recovered from panic")
