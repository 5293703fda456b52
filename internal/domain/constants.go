package domain

// Ограничения запроса на проживание
const (
	MinGuests = 1
	MaxGuests = 8
)

// Ограничения анкеты гостя
const (
	MinNameLength            = 2
	MaxNameLength            = 50
	MinPhoneLength           = 10
	MaxPhoneLength           = 20
	MaxSpecialRequestsLength = 500
)

// Правила ценообразования
const (
	WeekendSurchargeRate = 0.20 // надбавка при заезде в пятницу или субботу
	LongStayDiscountRate = 0.10 // скидка за длительное проживание, применяется после надбавки
	LongStayMinNights    = 7
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Имена полей, используемые в ошибках валидации
const (
	FieldCheckIn          = "checkIn"
	FieldCheckOut         = "checkOut"
	FieldGuests           = "guests"
	FieldFirstName        = "firstName"
	FieldLastName         = "lastName"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldCountry          = "country"
	FieldSpecialRequests  = "specialRequests"
	FieldArrivalWindow    = "arrivalTimeWindow"
	FieldMarketingConsent = "marketingConsent"
	FieldTermsAccepted    = "termsAccepted"
)
