package domain

import (
	"fmt"
	"time"
)

// Сообщения валидации дат проживания
const (
	MsgCheckInRequired  = "Check-in date is required."
	MsgCheckOutRequired = "Check-out date is required."
	MsgCheckInInPast    = "Check-in date cannot be in the past."
	MsgSameDayCheckOut  = "Check-out must be at least 1 day after check-in."
	MsgCheckOutBefore   = "Check-out date must be after check-in date."
	MsgGuestsOutOfRange = "Guests must be between 1 and 8."
)

// StayQuery запрос на проживание: даты заезда/выезда и количество гостей.
// Создается только через NewStayQuery, поэтому всегда валиден на момент создания
type StayQuery struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

// NewStayQuery валидирует входные данные относительно момента now и создает запрос
func NewStayQuery(checkIn, checkOut time.Time, guests int, now time.Time) (StayQuery, error) {
	if errs := ValidateStay(&checkIn, &checkOut, guests, now); !errs.Empty() {
		return StayQuery{}, fmt.Errorf("%w: %w", ErrInvalidStay, errs)
	}

	return StayQuery{
		CheckIn:  DateOnly(checkIn),
		CheckOut: DateOnly(checkOut),
		Guests:   guests,
	}, nil
}

// Nights количество ночей проживания
func (q StayQuery) Nights() int {
	return NightsBetween(q.CheckIn, q.CheckOut)
}

// Equal сравнивает запросы по календарным датам и числу гостей
func (q StayQuery) Equal(other StayQuery) bool {
	return q.CheckIn.Equal(other.CheckIn) &&
		q.CheckOut.Equal(other.CheckOut) &&
		q.Guests == other.Guests
}

// IsZero возвращает true для пустого запроса
func (q StayQuery) IsZero() bool {
	return q.CheckIn.IsZero() && q.CheckOut.IsZero() && q.Guests == 0
}

// ValidateStay проверяет даты и количество гостей. Отсутствующая дата передается как nil.
// Сравнение с "сегодня" идет по календарной дате now
func ValidateStay(checkIn, checkOut *time.Time, guests int, now time.Time) FieldErrors {
	errs := make(FieldErrors)

	if checkIn == nil || checkIn.IsZero() {
		errs[FieldCheckIn] = MsgCheckInRequired
	} else if DateOnly(*checkIn).Before(DateOnly(now)) {
		errs[FieldCheckIn] = MsgCheckInInPast
	}

	if checkOut == nil || checkOut.IsZero() {
		errs[FieldCheckOut] = MsgCheckOutRequired
	} else if checkIn != nil && !checkIn.IsZero() {
		in, out := DateOnly(*checkIn), DateOnly(*checkOut)
		switch {
		case out.Equal(in):
			errs[FieldCheckOut] = MsgSameDayCheckOut
		case out.Before(in):
			errs[FieldCheckOut] = MsgCheckOutBefore
		}
	}

	if guests < MinGuests || guests > MaxGuests {
		errs[FieldGuests] = MsgGuestsOutOfRange
	}

	return errs
}

// DateOnly отбрасывает время и возвращает полночь календарной даты в UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NightsBetween количество ночей между двумя календарными датами.
// Считается по Unix-секундам, time.Duration ограничен ~292 годами
func NightsBetween(checkIn, checkOut time.Time) int {
	return int((DateOnly(checkOut).Unix() - DateOnly(checkIn).Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// ClampGuests приводит количество гостей к допустимому диапазону
func ClampGuests(guests int) int {
	if guests < MinGuests {
		return MinGuests
	}
	if guests > MaxGuests {
		return MaxGuests
	}
	return guests
}
