package handlers

import (
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/search_rooms"
	"github.com/m04kA/SMC-HotelBooking/internal/wizard"
	"github.com/m04kA/SMC-HotelBooking/pkg/ptr"
)

// Offer предложение номера с рассчитанной ценой
type Offer struct {
	RoomID           int64    `json:"roomId"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	NightlyRate      float64  `json:"nightlyRate"`
	Capacity         int      `json:"capacity"`
	BedType          string   `json:"bedType"`
	Size             int      `json:"size"`
	Amenities        []string `json:"amenities"`
	Description      string   `json:"description,omitempty"`
	Images           []string `json:"images"`
	Nights           int      `json:"nights"`
	WeekendSurcharge bool     `json:"weekendSurcharge"`
	LongStayDiscount bool     `json:"longStayDiscount"`
	// DiscountedPrice цена до скидки за длительное проживание, отображается зачеркнутой
	DiscountedPrice *int64 `json:"discountedPrice,omitempty"`
	TotalPrice      int64  `json:"totalPrice"`
}

// OffersView список предложений в порядке отображения
type OffersView struct {
	Items      []Offer `json:"items"`
	Total      int     `json:"total"`
	Sort       string  `json:"sort"`
	Type       *string `json:"type,omitempty"`
	Suggestion string  `json:"suggestion,omitempty"`
}

type StayState struct {
	CheckIn  *string           `json:"checkIn"`
	CheckOut *string           `json:"checkOut"`
	Guests   int               `json:"guests"`
	Nights   int               `json:"nights"`
	Errors   map[string]string `json:"errors,omitempty"`
}

type GuestProfile struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Country           string `json:"country"`
	SpecialRequests   string `json:"specialRequests"`
	ArrivalTimeWindow string `json:"arrivalTimeWindow"`
	MarketingConsent  bool   `json:"marketingConsent"`
	TermsAccepted     bool   `json:"termsAccepted"`
}

type GuestState struct {
	Profile GuestProfile      `json:"profile"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Confirmation выпущенное подтверждение бронирования
type Confirmation struct {
	Number     string       `json:"confirmationNumber"`
	IssuedAt   time.Time    `json:"issuedAt"`
	CheckIn    string       `json:"checkIn"`
	CheckOut   string       `json:"checkOut"`
	Nights     int          `json:"nights"`
	Guests     int          `json:"guests"`
	Room       Offer        `json:"room"`
	Guest      GuestProfile `json:"guest"`
	TotalPrice int64        `json:"totalPrice"`
}

// WizardState состояние сессии мастера
type WizardState struct {
	SessionID    string        `json:"sessionId"`
	Step         string        `json:"step"`
	Busy         bool          `json:"busy"`
	CanAdvance   bool          `json:"canAdvance"`
	CanGoBack    bool          `json:"canGoBack"`
	Stay         StayState     `json:"stay"`
	Offers       *OffersView   `json:"offers,omitempty"`
	Selected     *Offer        `json:"selected,omitempty"`
	TotalPrice   int64         `json:"totalPrice,omitempty"`
	Guest        *GuestState   `json:"guest,omitempty"`
	Confirmation *Confirmation `json:"confirmation,omitempty"`
	Link         string        `json:"link"`
}

func FromOffer(o domain.RoomOffer) Offer {
	res := Offer{
		RoomID:           o.Room.ID,
		Name:             o.Room.Name,
		Type:             string(o.Room.Type()),
		NightlyRate:      o.Room.NightlyRate,
		Capacity:         o.Room.Capacity,
		BedType:          o.Room.BedType,
		Size:             o.Room.SizeSqFt,
		Amenities:        nonNil(o.Room.Amenities),
		Description:      o.Room.Description,
		Images:           nonNil(o.Room.Images),
		Nights:           o.Price.Nights,
		WeekendSurcharge: o.Price.WeekendSurcharge,
		LongStayDiscount: o.Price.LongStayDiscount,
		TotalPrice:       o.Price.Total,
	}
	if o.Price.ReferencePrice != nil {
		res.DiscountedPrice = ptr.Ptr(*o.Price.ReferencePrice)
	}
	return res
}

func FromView(v search_rooms.View) OffersView {
	res := OffersView{
		Items:      make([]Offer, 0, len(v.Offers)),
		Total:      v.Total,
		Sort:       string(v.Sort),
		Suggestion: v.Suggestion,
	}
	for _, o := range v.Offers {
		res.Items = append(res.Items, FromOffer(o))
	}
	if v.Type != nil {
		res.Type = ptr.Ptr(string(*v.Type))
	}
	return res
}

func FromGuestProfile(g domain.GuestProfile) GuestProfile {
	return GuestProfile{
		FirstName:         g.FirstName,
		LastName:          g.LastName,
		Email:             g.Email,
		Phone:             g.Phone,
		Country:           g.Country,
		SpecialRequests:   g.SpecialRequests,
		ArrivalTimeWindow: string(g.ArrivalWindow),
		MarketingConsent:  g.MarketingConsent,
		TermsAccepted:     g.TermsAccepted,
	}
}

func FromConfirmation(rec domain.ConfirmationRecord) Confirmation {
	draft := rec.Draft()
	stay := rec.Stay()

	return Confirmation{
		Number:     rec.Number(),
		IssuedAt:   rec.IssuedAt().UTC(),
		CheckIn:    stay.CheckIn.Format(domain.DateFormat),
		CheckOut:   stay.CheckOut.Format(domain.DateFormat),
		Nights:     stay.Nights(),
		Guests:     stay.Guests,
		Room:       FromOffer(draft.Offer()),
		Guest:      FromGuestProfile(draft.Guest()),
		TotalPrice: rec.TotalPrice(),
	}
}

func FromSnapshot(s wizard.Snapshot) WizardState {
	res := WizardState{
		SessionID:  s.SessionID,
		Step:       s.Step.String(),
		Busy:       s.Busy,
		CanAdvance: s.CanAdvance,
		CanGoBack:  s.CanGoBack,
		Stay: StayState{
			CheckIn:  formatDate(s.Stay.CheckIn),
			CheckOut: formatDate(s.Stay.CheckOut),
			Guests:   s.Stay.Guests,
			Nights:   s.Stay.Nights,
			Errors:   nonEmpty(s.Stay.Errors),
		},
		TotalPrice: s.TotalPrice,
		Link:       s.Link.Encode(),
	}

	if s.Offers != nil {
		view := FromView(*s.Offers)
		res.Offers = &view
	}
	if s.Selected != nil {
		offer := FromOffer(*s.Selected)
		res.Selected = &offer
	}
	if s.Guest != nil {
		res.Guest = &GuestState{
			Profile: FromGuestProfile(s.Guest.Profile),
			Errors:  nonEmpty(s.Guest.Errors),
		}
	}
	if s.Confirmation != nil {
		c := FromConfirmation(*s.Confirmation)
		res.Confirmation = &c
	}

	return res
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return ptr.Ptr(t.Format(domain.DateFormat))
}

func nonEmpty(fe domain.FieldErrors) map[string]string {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
