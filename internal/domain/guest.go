package domain

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// ArrivalWindow ожидаемое время прибытия гостя
type ArrivalWindow string

const (
	ArrivalMorning   ArrivalWindow = "morning"
	ArrivalAfternoon ArrivalWindow = "afternoon"
	ArrivalEvening   ArrivalWindow = "evening"
	ArrivalLate      ArrivalWindow = "late"

	DefaultArrivalWindow = ArrivalAfternoon
)

// ArrivalWindows допустимые окна прибытия
var ArrivalWindows = []ArrivalWindow{
	ArrivalMorning,
	ArrivalAfternoon,
	ArrivalEvening,
	ArrivalLate,
}

// IsValid возвращает true для одного из перечисленных окон
func (w ArrivalWindow) IsValid() bool {
	for _, known := range ArrivalWindows {
		if w == known {
			return true
		}
	}
	return false
}

// Сообщения валидации анкеты гостя
const (
	MsgFirstNameLength    = "First name must be between 2 and 50 characters."
	MsgLastNameLength     = "Last name must be between 2 and 50 characters."
	MsgEmailInvalid       = "Please enter a valid email address."
	MsgPhoneLength        = "Phone number must be between 10 and 20 characters."
	MsgCountryRequired    = "Please select your country."
	MsgSpecialRequestsLen = "Special requests cannot exceed 500 characters."
	MsgArrivalWindow      = "Please select a valid arrival time."
	MsgTermsNotAccepted   = "You must accept the terms and conditions to continue."
)

// GuestProfile контактные данные гостя, оформляющего бронирование
type GuestProfile struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Country          string
	SpecialRequests  string
	ArrivalWindow    ArrivalWindow
	MarketingConsent bool
	TermsAccepted    bool
}

// NewGuestProfile создает пустую анкету со значениями по умолчанию
func NewGuestProfile() GuestProfile {
	return GuestProfile{ArrivalWindow: DefaultArrivalWindow}
}

// Validate проверяет все поля анкеты. MarketingConsent никогда не блокирует отправку
func (g *GuestProfile) Validate() FieldErrors {
	errs := make(FieldErrors)

	if !lengthBetween(g.FirstName, MinNameLength, MaxNameLength) {
		errs[FieldFirstName] = MsgFirstNameLength
	}

	if !lengthBetween(g.LastName, MinNameLength, MaxNameLength) {
		errs[FieldLastName] = MsgLastNameLength
	}

	if !IsValidEmail(g.Email) {
		errs[FieldEmail] = MsgEmailInvalid
	}

	if !lengthBetween(g.Phone, MinPhoneLength, MaxPhoneLength) {
		errs[FieldPhone] = MsgPhoneLength
	}

	if !IsSupportedCountry(g.Country) {
		errs[FieldCountry] = MsgCountryRequired
	}

	if utf8.RuneCountInString(g.SpecialRequests) > MaxSpecialRequestsLength {
		errs[FieldSpecialRequests] = MsgSpecialRequestsLen
	}

	if !g.ArrivalWindow.IsValid() {
		errs[FieldArrivalWindow] = MsgArrivalWindow
	}

	if !g.TermsAccepted {
		errs[FieldTermsAccepted] = MsgTermsNotAccepted
	}

	return errs
}

// IsValidEmail проверяет, что строка является одиночным адресом вида local@domain.tld
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	host := email[at+1:]

	return strings.Contains(host, ".") && !strings.HasSuffix(host, ".") && !strings.HasPrefix(host, ".")
}

func lengthBetween(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= lo && n <= hi
}
