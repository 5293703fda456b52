package confirmation

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// draftModel сохраненный черновик (колонка draft JSONB)
type draftModel struct {
	Room  roomModel  `json:"room"`
	Guest guestModel `json:"guest"`
}

type roomModel struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	NightlyRate float64  `json:"nightlyRate"`
	Capacity    int      `json:"capacity"`
	BedType     string   `json:"bedType"`
	SizeSqFt    int      `json:"sizeSqFt"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

type guestModel struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Country          string `json:"country"`
	SpecialRequests  string `json:"specialRequests,omitempty"`
	ArrivalWindow    string `json:"arrivalTimeWindow"`
	MarketingConsent bool   `json:"marketingConsent"`
	TermsAccepted    bool   `json:"termsAccepted"`
}

// row строка таблицы confirmations
type row struct {
	Number     string
	IssuedAt   time.Time
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	RoomID     int64
	TotalPrice int64
	GuestEmail string
	Draft      []byte
}

func toRow(rec domain.ConfirmationRecord) (row, error) {
	d := rec.Draft()
	offer := d.Offer()
	guest := d.Guest()

	draft, err := json.Marshal(draftModel{
		Room: roomModel{
			ID:          offer.Room.ID,
			Name:        offer.Room.Name,
			NightlyRate: offer.Room.NightlyRate,
			Capacity:    offer.Room.Capacity,
			BedType:     offer.Room.BedType,
			SizeSqFt:    offer.Room.SizeSqFt,
			Amenities:   offer.Room.Amenities,
			Description: offer.Room.Description,
			Images:      offer.Room.Images,
		},
		Guest: guestModel{
			FirstName:        guest.FirstName,
			LastName:         guest.LastName,
			Email:            guest.Email,
			Phone:            guest.Phone,
			Country:          guest.Country,
			SpecialRequests:  guest.SpecialRequests,
			ArrivalWindow:    string(guest.ArrivalWindow),
			MarketingConsent: guest.MarketingConsent,
			TermsAccepted:    guest.TermsAccepted,
		},
	})
	if err != nil {
		return row{}, fmt.Errorf("%w: toRow - marshal: %v", ErrEncodeDraft, err)
	}

	stay := rec.Stay()

	return row{
		Number:     rec.Number(),
		IssuedAt:   rec.IssuedAt().UTC(),
		CheckIn:    stay.CheckIn,
		CheckOut:   stay.CheckOut,
		Guests:     stay.Guests,
		RoomID:     offer.Room.ID,
		TotalPrice: rec.TotalPrice(),
		GuestEmail: guest.Email,
		Draft:      draft,
	}, nil
}

func fromRow(r row) (domain.ConfirmationRecord, error) {
	var m draftModel
	if err := json.Unmarshal(r.Draft, &m); err != nil {
		return domain.ConfirmationRecord{}, fmt.Errorf("%w: fromRow - unmarshal: %v", ErrDecodeDraft, err)
	}

	stay := domain.StayQuery{
		CheckIn:  domain.DateOnly(r.CheckIn),
		CheckOut: domain.DateOnly(r.CheckOut),
		Guests:   r.Guests,
	}

	room := domain.Room{
		ID:          m.Room.ID,
		Name:        m.Room.Name,
		NightlyRate: m.Room.NightlyRate,
		Capacity:    m.Room.Capacity,
		BedType:     m.Room.BedType,
		SizeSqFt:    m.Room.SizeSqFt,
		Amenities:   m.Room.Amenities,
		Description: m.Room.Description,
		Images:      m.Room.Images,
		IsAvailable: true,
	}

	guest := domain.GuestProfile{
		FirstName:        m.Guest.FirstName,
		LastName:         m.Guest.LastName,
		Email:            m.Guest.Email,
		Phone:            m.Guest.Phone,
		Country:          m.Guest.Country,
		SpecialRequests:  m.Guest.SpecialRequests,
		ArrivalWindow:    domain.ArrivalWindow(m.Guest.ArrivalWindow),
		MarketingConsent: m.Guest.MarketingConsent,
		TermsAccepted:    m.Guest.TermsAccepted,
	}

	rec, err := domain.RestoreConfirmationRecord(r.Number, r.IssuedAt, stay, room, guest)
	if err != nil {
		return domain.ConfirmationRecord{}, fmt.Errorf("%w: fromRow - restore: %v", ErrDecodeDraft, err)
	}

	return rec, nil
}
