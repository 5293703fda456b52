package search_rooms

import (
	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

type StayQuery struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`
	Nights   int    `json:"nights"`
}

type SearchRoomsResponse struct {
	Query  StayQuery           `json:"query"`
	Offers handlers.OffersView `json:"offers"`
}

func fromQuery(q domain.StayQuery) StayQuery {
	return StayQuery{
		CheckIn:  q.CheckIn.Format(domain.DateFormat),
		CheckOut: q.CheckOut.Format(domain.DateFormat),
		Guests:   q.Guests,
		Nights:   q.Nights(),
	}
}
