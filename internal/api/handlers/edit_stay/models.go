package edit_stay

import (
	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/forms"
)

// EditStayRequest изменение формы дат. Пустая строка в дате очищает поле
type EditStayRequest struct {
	CheckIn     *string `json:"checkIn"`
	CheckOut    *string `json:"checkOut"`
	Guests      *int    `json:"guests"`
	GuestsDelta int     `json:"guestsDelta"`
}

// ToPatch конвертирует запрос в изменение формы
func (r *EditStayRequest) ToPatch() (forms.StayPatch, error) {
	patch := forms.StayPatch{
		Guests:      r.Guests,
		GuestsDelta: r.GuestsDelta,
	}

	if r.CheckIn != nil {
		if *r.CheckIn == "" {
			patch.ClearCheckIn = true
		} else {
			t, err := handlers.ParseDate(*r.CheckIn)
			if err != nil {
				return patch, err
			}
			patch.CheckIn = t
		}
	}

	if r.CheckOut != nil {
		if *r.CheckOut == "" {
			patch.ClearCheckOut = true
		} else {
			t, err := handlers.ParseDate(*r.CheckOut)
			if err != nil {
				return patch, err
			}
			patch.CheckOut = t
		}
	}

	return patch, nil
}
