package domain

import (
	"fmt"
	"math"
	"time"
)

// Price расчет стоимости проживания в номере для конкретного запроса
type Price struct {
	Nights           int
	NightlyRate      float64
	WeekendSurcharge bool
	LongStayDiscount bool
	// ReferencePrice цена до скидки за длительное проживание (для отображения зачеркнутой цены).
	// nil, если скидка не применялась
	ReferencePrice *int64
	Total          int64
}

// RoomOffer номер, предложенный для конкретного запроса, с рассчитанной ценой
type RoomOffer struct {
	Room  Room
	Query StayQuery
	Price Price
}

// NewRoomOffer рассчитывает цену номера для запроса.
// Возвращает ErrRoomCannotHost, если номер недоступен или слишком мал
func NewRoomOffer(room Room, query StayQuery) (RoomOffer, error) {
	if !room.CanHost(query.Guests) {
		return RoomOffer{}, fmt.Errorf("%w: room id=%d, guests=%d", ErrRoomCannotHost, room.ID, query.Guests)
	}

	return RoomOffer{
		Room:  room.Clone(),
		Query: query,
		Price: CalculatePrice(room.NightlyRate, query),
	}, nil
}

// TotalPrice итоговая стоимость проживания
func (o *RoomOffer) TotalPrice() int64 {
	return o.Price.Total
}

// Clone возвращает глубокую копию предложения
func (o RoomOffer) Clone() RoomOffer {
	o.Room = o.Room.Clone()
	if o.Price.ReferencePrice != nil {
		ref := *o.Price.ReferencePrice
		o.Price.ReferencePrice = &ref
	}
	return o
}

// CalculatePrice считает стоимость проживания:
//  1. base = ставка за ночь * количество ночей
//  2. заезд в пятницу или субботу: base *= 1.20
//  3. от 7 ночей: запоминаем base как ReferencePrice, затем base *= 0.90
//  4. округление до целой денежной единицы
func CalculatePrice(nightlyRate float64, query StayQuery) Price {
	nights := query.Nights()

	price := Price{
		Nights:      nights,
		NightlyRate: nightlyRate,
	}

	base := nightlyRate * float64(nights)

	if IsWeekendCheckIn(query.CheckIn) {
		base *= 1 + WeekendSurchargeRate
		price.WeekendSurcharge = true
	}

	if nights >= LongStayMinNights {
		ref := int64(math.Round(base))
		price.ReferencePrice = &ref
		base *= 1 - LongStayDiscountRate
		price.LongStayDiscount = true
	}

	price.Total = int64(math.Round(base))

	return price
}

// IsWeekendCheckIn возвращает true для заезда в пятницу или субботу
func IsWeekendCheckIn(checkIn time.Time) bool {
	wd := checkIn.Weekday()
	return wd == time.Friday || wd == time.Saturday
}
