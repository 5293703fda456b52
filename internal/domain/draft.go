package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookingDraft черновик бронирования. Закрытая сумма типов:
// DatesOnly -> DatesAndRoom -> DatesRoomAndGuest -> ConfirmationRecord.
// Каждый следующий вариант создается только из предыдущего, поэтому
// выбранный номер всегда рассчитан для текущего запроса на проживание
type BookingDraft interface {
	Stay() StayQuery
	Step() Step
	isBookingDraft()
}

// DatesOnly черновик с подтвержденными датами
type DatesOnly struct {
	stay StayQuery
}

// NewDatesOnly начинает черновик с валидного запроса на проживание
func NewDatesOnly(stay StayQuery) DatesOnly {
	return DatesOnly{stay: stay}
}

func (d DatesOnly) Stay() StayQuery { return d.stay }
func (d DatesOnly) Step() Step      { return StepRooms }
func (DatesOnly) isBookingDraft()   {}

// WithRoom добавляет выбранный номер. Предложение должно быть рассчитано для того же запроса
func (d DatesOnly) WithRoom(offer RoomOffer) (DatesAndRoom, error) {
	if !offer.Query.Equal(d.stay) {
		return DatesAndRoom{}, fmt.Errorf("%w: room id=%d", ErrStaleOffer, offer.Room.ID)
	}
	if !offer.Room.CanHost(d.stay.Guests) {
		return DatesAndRoom{}, fmt.Errorf("%w: room id=%d", ErrRoomCannotHost, offer.Room.ID)
	}

	return DatesAndRoom{stay: d.stay, offer: offer.Clone()}, nil
}

// DatesAndRoom черновик с датами и выбранным номером
type DatesAndRoom struct {
	stay  StayQuery
	offer RoomOffer
}

func (d DatesAndRoom) Stay() StayQuery { return d.stay }
func (d DatesAndRoom) Step() Step      { return StepDetails }
func (DatesAndRoom) isBookingDraft()   {}

// Offer выбранное предложение
func (d DatesAndRoom) Offer() RoomOffer { return d.offer.Clone() }

// TotalPrice стоимость выбранного номера для текущего запроса
func (d DatesAndRoom) TotalPrice() int64 { return d.offer.Price.Total }

// Dates откатывает черновик к датам, отбрасывая выбор номера
func (d DatesAndRoom) Dates() DatesOnly { return DatesOnly{stay: d.stay} }

// WithGuest добавляет анкету гостя. Анкета должна быть полностью валидна
func (d DatesAndRoom) WithGuest(guest GuestProfile) (DatesRoomAndGuest, error) {
	guest = normalizeGuest(guest)

	if errs := guest.Validate(); !errs.Empty() {
		if errs.Has(FieldTermsAccepted) {
			return DatesRoomAndGuest{}, fmt.Errorf("%w: %w: %w", ErrInvalidGuest, ErrTermsNotAccepted, errs)
		}
		return DatesRoomAndGuest{}, fmt.Errorf("%w: %w", ErrInvalidGuest, errs)
	}

	return DatesRoomAndGuest{stay: d.stay, offer: d.offer.Clone(), guest: guest}, nil
}

// DatesRoomAndGuest полностью заполненный черновик, готовый к подтверждению
type DatesRoomAndGuest struct {
	stay  StayQuery
	offer RoomOffer
	guest GuestProfile
}

func (d DatesRoomAndGuest) Stay() StayQuery { return d.stay }
func (d DatesRoomAndGuest) Step() Step      { return StepConfirm }
func (DatesRoomAndGuest) isBookingDraft()   {}

func (d DatesRoomAndGuest) Offer() RoomOffer { return d.offer.Clone() }

func (d DatesRoomAndGuest) Guest() GuestProfile { return d.guest }

func (d DatesRoomAndGuest) TotalPrice() int64 { return d.offer.Price.Total }

// Room откатывает черновик к выбранному номеру, отбрасывая анкету
func (d DatesRoomAndGuest) Room() DatesAndRoom {
	return DatesAndRoom{stay: d.stay, offer: d.offer.Clone()}
}

func (d DatesRoomAndGuest) clone() DatesRoomAndGuest {
	return DatesRoomAndGuest{stay: d.stay, offer: d.offer.Clone(), guest: d.guest}
}

// Issue выпускает подтверждение для черновика
func (d DatesRoomAndGuest) Issue(number string, issuedAt time.Time) (ConfirmationRecord, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return ConfirmationRecord{}, ErrEmptyConfirmationNumber
	}

	return ConfirmationRecord{
		number:   number,
		draft:    d.clone(),
		issuedAt: issuedAt,
	}, nil
}

// ConfirmationRecord выпущенное подтверждение бронирования.
// Терминальный вариант черновика: поля не экспортируются и не изменяются после создания
type ConfirmationRecord struct {
	number   string
	draft    DatesRoomAndGuest
	issuedAt time.Time
}

func (c ConfirmationRecord) Stay() StayQuery { return c.draft.stay }
func (c ConfirmationRecord) Step() Step      { return StepDone }
func (ConfirmationRecord) isBookingDraft()   {}

func (c ConfirmationRecord) Number() string { return c.number }

func (c ConfirmationRecord) IssuedAt() time.Time { return c.issuedAt }

// Draft возвращает копию подтвержденного черновика
func (c ConfirmationRecord) Draft() DatesRoomAndGuest { return c.draft.clone() }

func (c ConfirmationRecord) TotalPrice() int64 { return c.draft.offer.Price.Total }

func (c ConfirmationRecord) IsZero() bool { return c.number == "" }

func normalizeGuest(g GuestProfile) GuestProfile {
	g.FirstName = strings.TrimSpace(g.FirstName)
	g.LastName = strings.TrimSpace(g.LastName)
	g.Email = strings.TrimSpace(g.Email)
	g.Phone = strings.TrimSpace(g.Phone)
	g.Country = NormalizeCountry(g.Country)
	g.SpecialRequests = strings.TrimSpace(g.SpecialRequests)
	if g.ArrivalWindow == "" {
		g.ArrivalWindow = DefaultArrivalWindow
	}
	return g
}

// RestoreConfirmationRecord восстанавливает ранее выпущенное подтверждение из хранилища.
// Предложение пересчитывается для сохраненного запроса, чтобы цена не расходилась с запросом
func RestoreConfirmationRecord(number string, issuedAt time.Time, stay StayQuery, room Room, guest GuestProfile) (ConfirmationRecord, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return ConfirmationRecord{}, ErrEmptyConfirmationNumber
	}

	// номер мог стать недоступным после бронирования, поэтому CanHost не проверяется
	offer := RoomOffer{
		Room:  room.Clone(),
		Query: stay,
		Price: CalculatePrice(room.NightlyRate, stay),
	}

	return ConfirmationRecord{
		number:   number,
		draft:    DatesRoomAndGuest{stay: stay, offer: offer, guest: normalizeGuest(guest)},
		issuedAt: issuedAt,
	}, nil
}
