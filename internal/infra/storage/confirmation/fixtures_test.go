package confirmation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

var issuedAt = time.Date(2026, 10, 12, 16, 0, 0, 0, time.UTC)

func newRecord(t *testing.T, number string) domain.ConfirmationRecord {
	t.Helper()

	now := time.Date(2026, 10, 12, 9, 0, 0, 0, time.UTC)
	stay, err := domain.NewStayQuery(
		time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 23, 0, 0, 0, 0, time.UTC),
		2, now)
	require.NoError(t, err)

	offer, err := domain.NewRoomOffer(domain.Room{
		ID:          3,
		Name:        "Junior Suite",
		NightlyRate: 100,
		Capacity:    2,
		BedType:     "Queen",
		SizeSqFt:    600,
		Amenities:   []string{"WiFi", "Balcony"},
		IsAvailable: true,
	}, stay)
	require.NoError(t, err)

	withRoom, err := domain.NewDatesOnly(stay).WithRoom(offer)
	require.NoError(t, err)

	complete, err := withRoom.WithGuest(domain.GuestProfile{
		FirstName:     "Linus",
		LastName:      "Pauling",
		Email:         "linus@example.com",
		Phone:         "5550100100",
		Country:       "US",
		ArrivalWindow: domain.ArrivalLate,
		TermsAccepted: true,
	})
	require.NoError(t, err)

	rec, err := complete.Issue(number, issuedAt)
	require.NoError(t, err)

	return rec
}
