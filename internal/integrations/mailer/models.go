package mailer

import "time"

// Config параметры SMTP
type Config struct {
	Host      string
	Port      int
	User      string
	Password  string
	FromName  string
	FromEmail string
	Timeout   time.Duration
}

// confirmationView данные шаблона письма
type confirmationView struct {
	HotelName        string
	Number           string
	GuestName        string
	RoomName         string
	BedType          string
	CheckIn          string
	CheckOut         string
	Nights           int
	Guests           int
	ArrivalWindow    string
	SpecialRequests  string
	NightlyRate      string
	WeekendSurcharge bool
	LongStayDiscount bool
	ReferencePrice   string
	Total            string
	IssuedAt         string
}
