package forms

import (
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// GuestPatch изменение анкеты гостя. Каждое непустое поле считается "тронутым"
type GuestPatch struct {
	FirstName        *string
	LastName         *string
	Email            *string
	Phone            *string
	Country          *string
	SpecialRequests  *string
	ArrivalWindow    *domain.ArrivalWindow
	MarketingConsent *bool
	TermsAccepted    *bool
}

// GuestForm анкета третьего шага с живой валидацией.
// Ошибки поля показываются после первого изменения этого поля или после попытки отправки
type GuestForm struct {
	profile domain.GuestProfile
	touched map[string]bool
}

func NewGuestForm() *GuestForm {
	return &GuestForm{
		profile: domain.NewGuestProfile(),
		touched: make(map[string]bool),
	}
}

// NewGuestFormFromProfile форма, заполненная ранее принятой анкетой
func NewGuestFormFromProfile(p domain.GuestProfile) *GuestForm {
	f := NewGuestForm()
	f.profile = p
	if f.profile.ArrivalWindow == "" {
		f.profile.ArrivalWindow = domain.DefaultArrivalWindow
	}
	return f
}

// Apply применяет изменение и помечает затронутые поля
func (f *GuestForm) Apply(p GuestPatch) {
	setString(&f.profile.FirstName, p.FirstName, domain.FieldFirstName, f.touched)
	setString(&f.profile.LastName, p.LastName, domain.FieldLastName, f.touched)
	setString(&f.profile.Email, p.Email, domain.FieldEmail, f.touched)
	setString(&f.profile.Phone, p.Phone, domain.FieldPhone, f.touched)
	setString(&f.profile.Country, p.Country, domain.FieldCountry, f.touched)
	setString(&f.profile.SpecialRequests, p.SpecialRequests, domain.FieldSpecialRequests, f.touched)

	if p.ArrivalWindow != nil {
		f.profile.ArrivalWindow = *p.ArrivalWindow
		f.touched[domain.FieldArrivalWindow] = true
	}
	if p.MarketingConsent != nil {
		f.profile.MarketingConsent = *p.MarketingConsent
		f.touched[domain.FieldMarketingConsent] = true
	}
	if p.TermsAccepted != nil {
		f.profile.TermsAccepted = *p.TermsAccepted
		f.touched[domain.FieldTermsAccepted] = true
	}
}

// TouchAll помечает все поля, чтобы показать все ошибки (попытка отправки)
func (f *GuestForm) TouchAll() {
	for _, field := range []string{
		domain.FieldFirstName,
		domain.FieldLastName,
		domain.FieldEmail,
		domain.FieldPhone,
		domain.FieldCountry,
		domain.FieldSpecialRequests,
		domain.FieldArrivalWindow,
		domain.FieldTermsAccepted,
	} {
		f.touched[field] = true
	}
}

// Errors ошибки тронутых полей
func (f *GuestForm) Errors() domain.FieldErrors {
	return f.profile.Validate().Only(f.touched)
}

// CanSubmit возвращает true, когда анкета полностью валидна
func (f *GuestForm) CanSubmit() bool {
	return f.profile.Validate().Empty()
}

// Profile текущие значения анкеты
func (f *GuestForm) Profile() domain.GuestProfile {
	return f.profile
}

func setString(dst *string, v *string, field string, touched map[string]bool) {
	if v == nil {
		return
	}
	*dst = *v
	touched[field] = true
}
