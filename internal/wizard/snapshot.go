package wizard

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/search_rooms"
)

// Snapshot состояние мастера для отображения. Копия, не связанная с контроллером
type Snapshot struct {
	SessionID  string
	Step       domain.Step
	Busy       bool
	CanAdvance bool
	CanGoBack  bool

	Stay StayState

	// Rooms: предложения для текущего запроса
	Offers *search_rooms.View

	// Details, Confirm, Done: выбранное предложение
	Selected   *domain.RoomOffer
	TotalPrice int64

	// Details, Confirm: анкета гостя
	Guest *GuestState

	// Done: выпущенное подтверждение
	Confirmation *domain.ConfirmationRecord

	// Link параметры ссылки, по которой мастер восстанавливается на текущем шаге
	Link url.Values
}

// StayState значения и ошибки формы дат
type StayState struct {
	CheckIn  *time.Time
	CheckOut *time.Time
	Guests   int
	Nights   int
	Errors   domain.FieldErrors
}

// GuestState значения и ошибки анкеты гостя
type GuestState struct {
	Profile domain.GuestProfile
	Errors  domain.FieldErrors
}
