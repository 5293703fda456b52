package edit_guest

import (
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/forms"
)

// EditGuestRequest изменение анкеты гостя. Отсутствующие поля не меняются
type EditGuestRequest struct {
	FirstName         *string `json:"firstName"`
	LastName          *string `json:"lastName"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	Country           *string `json:"country"`
	SpecialRequests   *string `json:"specialRequests"`
	ArrivalTimeWindow *string `json:"arrivalTimeWindow"`
	MarketingConsent  *bool   `json:"marketingConsent"`
	TermsAccepted     *bool   `json:"termsAccepted"`
}

func (r *EditGuestRequest) ToPatch() forms.GuestPatch {
	patch := forms.GuestPatch{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phone:            r.Phone,
		Country:          r.Country,
		SpecialRequests:  r.SpecialRequests,
		MarketingConsent: r.MarketingConsent,
		TermsAccepted:    r.TermsAccepted,
	}

	if r.ArrivalTimeWindow != nil {
		w := domain.ArrivalWindow(*r.ArrivalTimeWindow)
		patch.ArrivalWindow = &w
	}

	return patch
}
