package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrInvalidStay возвращается, когда запрос на проживание не проходит валидацию
	ErrInvalidStay = errors.New("domain: invalid stay query")

	// ErrInvalidGuest возвращается, когда анкета гостя не проходит валидацию
	ErrInvalidGuest = errors.New("domain: invalid guest profile")

	// ErrTermsNotAccepted возвращается, когда гость не принял условия бронирования
	ErrTermsNotAccepted = errors.New("domain: terms and conditions not accepted")

	// ErrStaleOffer возвращается при попытке выбрать предложение, рассчитанное для другого запроса
	ErrStaleOffer = errors.New("domain: room offer was priced for a different stay query")

	// ErrRoomCannotHost возвращается, когда номер недоступен или не вмещает гостей
	ErrRoomCannotHost = errors.New("domain: room is unavailable for the requested stay")

	// ErrEmptyConfirmationNumber возвращается при попытке выпустить подтверждение без номера
	ErrEmptyConfirmationNumber = errors.New("domain: confirmation number is empty")
)

// FieldErrors ошибки валидации по полям: поле -> сообщение для пользователя
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+fe[field])
	}

	return strings.Join(parts, "; ")
}

// Has возвращает true, если для поля есть ошибка
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Empty возвращает true, если ошибок нет
func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}

// Only возвращает ошибки только для перечисленных полей
func (fe FieldErrors) Only(fields map[string]bool) FieldErrors {
	res := make(FieldErrors)
	for field, msg := range fe {
		if fields[field] {
			res[field] = msg
		}
	}
	return res
}

// AsFieldErrors извлекает FieldErrors из цепочки ошибок
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
