package wizard

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/search_rooms"
)

func values(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Set(pairs[i], pairs[i+1])
	}
	return v
}

func TestParseLink(t *testing.T) {
	tests := []struct {
		name     string
		in       url.Values
		checkIn  *string
		checkOut *string
		guests   int
		roomID   *int64
	}{
		{name: "empty", in: values(), guests: 1},
		{
			name:     "all valid",
			in:       values("checkIn", "2026-10-16", "checkOut", "2026-10-18", "guests", "3", "roomId", "7"),
			checkIn:  strPtr("2026-10-16"),
			checkOut: strPtr("2026-10-18"),
			guests:   3,
			roomID:   int64Ptr(7),
		},
		{
			name:    "rfc3339",
			in:      values("checkIn", "2026-10-16T14:00:00Z"),
			checkIn: strPtr("2026-10-16"),
			guests:  1,
		},
		{name: "garbage dates", in: values("checkIn", "tomorrow", "checkOut", "2026-13-45"), guests: 1},
		{name: "guests not a number", in: values("guests", "two"), guests: 1},
		{name: "guests out of range", in: values("guests", "12"), guests: 1},
		{name: "guests zero", in: values("guests", "0"), guests: 1},
		{name: "room negative", in: values("roomId", "-4"), guests: 1},
		{name: "room not a number", in: values("roomId", "suite"), guests: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseLink(tt.in)

			assertDate(t, tt.checkIn, p.CheckIn)
			assertDate(t, tt.checkOut, p.CheckOut)
			assert.Equal(t, tt.guests, p.Guests)
			assert.Equal(t, tt.roomID, p.RoomID)
		})
	}
}

func TestFromLink_Resumability(t *testing.T) {
	env := newEnv(t, delays{})
	ctx := context.Background()

	// пошаговый путь
	stepwise := env.factory.New("a")
	toDetails(t, stepwise, day(4), day(12), 2, 2)
	expected := stepwise.Snapshot(search_rooms.ViewOptions{})

	link := stepwise.Link()
	assert.Equal(t, "2026-10-16", link.Get(ParamCheckIn))
	assert.Equal(t, "2026-10-24", link.Get(ParamCheckOut))
	assert.Equal(t, "2", link.Get(ParamGuests))
	assert.Equal(t, "2", link.Get(ParamRoomID))

	resumed := env.factory.FromLink(ctx, "b", ParseLink(link))
	got := resumed.Snapshot(search_rooms.ViewOptions{})

	assert.Equal(t, domain.StepDetails, got.Step)
	assert.Equal(t, expected.Selected.Room.ID, got.Selected.Room.ID)
	assert.Equal(t, expected.TotalPrice, got.TotalPrice)
	assert.Equal(t, expected.Selected.Price, got.Selected.Price)
	assert.Equal(t, link, got.Link)
}

func TestFromLink_EveryStepRoundTrips(t *testing.T) {
	env := newEnv(t, delays{})
	ctx := context.Background()
	c := env.factory.New("a")

	check := func(expected domain.Step) {
		t.Helper()
		resumed := env.factory.FromLink(ctx, "r", ParseLink(c.Link()))
		assert.Equal(t, expected, resumed.Step())
	}

	check(domain.StepDates)

	require.NoError(t, c.EditStay(stayPatch(day(1), day(3), 2)))
	check(domain.StepRooms) // полная форма дат восстанавливается сразу в Rooms

	require.NoError(t, c.SubmitDates(ctx))
	check(domain.StepRooms)

	require.NoError(t, c.SelectRoom(1))
	check(domain.StepDetails)

	require.NoError(t, c.EditGuest(validGuestPatch()))
	require.NoError(t, c.SubmitGuest(ctx))
	check(domain.StepDetails)

	_, err := c.Confirm(ctx)
	require.NoError(t, err)
	check(domain.StepDetails)
}

func TestFromLink_MalformedEqualsEmpty(t *testing.T) {
	env := newEnv(t, delays{})
	ctx := context.Background()

	empty := env.factory.FromLink(ctx, "x", ParseLink(url.Values{})).Snapshot(search_rooms.ViewOptions{})
	malformed := env.factory.FromLink(ctx, "x", ParseLink(values("checkIn", "not-a-date"))).Snapshot(search_rooms.ViewOptions{})

	assert.Equal(t, domain.StepDates, malformed.Step)
	assert.Nil(t, malformed.Stay.CheckIn)
	assert.Nil(t, malformed.Stay.CheckOut)
	assert.Equal(t, empty, malformed)
	assert.Equal(t, empty, env.factory.New("x").Snapshot(search_rooms.ViewOptions{}))
}

func TestFromLink_FallsThrough(t *testing.T) {
	env := newEnv(t, delays{})
	ctx := context.Background()

	tests := []struct {
		name   string
		link   url.Values
		step   domain.Step
		offers int
	}{
		{
			name: "unknown room goes to rooms",
			link: values("checkIn", "2026-10-13", "checkOut", "2026-10-15", "guests", "2", "roomId", "99"),
			step: domain.StepRooms, offers: 3,
		},
		{
			name: "room too small goes to rooms",
			link: values("checkIn", "2026-10-13", "checkOut", "2026-10-15", "guests", "4", "roomId", "1"),
			step: domain.StepRooms, offers: 1,
		},
		{
			name: "unavailable room goes to rooms",
			link: values("checkIn", "2026-10-13", "checkOut", "2026-10-15", "guests", "2", "roomId", "4"),
			step: domain.StepRooms, offers: 3,
		},
		{
			name: "room without dates stays at dates",
			link: values("guests", "2", "roomId", "1"),
			step: domain.StepDates,
		},
		{
			name: "past dates stay at dates",
			link: values("checkIn", "2026-10-01", "checkOut", "2026-10-03", "roomId", "1"),
			step: domain.StepDates,
		},
		{
			name: "same day stays at dates",
			link: values("checkIn", "2026-10-14", "checkOut", "2026-10-14"),
			step: domain.StepDates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := env.factory.FromLink(ctx, "x", ParseLink(tt.link))
			snap := c.Snapshot(search_rooms.ViewOptions{})

			assert.Equal(t, tt.step, snap.Step)
			if tt.step == domain.StepRooms {
				require.NotNil(t, snap.Offers)
				assert.Len(t, snap.Offers.Offers, tt.offers)
			}
		})
	}
}

func TestFromLink_PrefillsPartialValues(t *testing.T) {
	env := newEnv(t, delays{})

	c := env.factory.FromLink(context.Background(), "x", ParseLink(values("checkIn", "2026-10-20", "guests", "5")))
	snap := c.Snapshot(search_rooms.ViewOptions{})

	assert.Equal(t, domain.StepDates, snap.Step)
	require.NotNil(t, snap.Stay.CheckIn)
	assert.Equal(t, day(8), *snap.Stay.CheckIn)
	assert.Nil(t, snap.Stay.CheckOut)
	assert.Equal(t, 5, snap.Stay.Guests)
	assert.False(t, snap.CanAdvance)

	require.NoError(t, c.EditStay(stayPatch(day(8), day(9), 5)))
	require.NoError(t, c.SubmitDates(context.Background()))
	assert.Equal(t, domain.StepRooms, c.Step())
}

func TestFromLink_BackFromDetailsRunsLookup(t *testing.T) {
	env := newEnv(t, delays{})
	ctx := context.Background()

	c := env.factory.FromLink(ctx, "x", ParseLink(values(
		"checkIn", "2026-10-13", "checkOut", "2026-10-15", "guests", "2", "roomId", "3")))
	require.Equal(t, domain.StepDetails, c.Step())

	require.NoError(t, c.Back(ctx))
	snap := c.Snapshot(search_rooms.ViewOptions{})
	assert.Equal(t, domain.StepRooms, snap.Step)
	require.NotNil(t, snap.Offers)
	assert.Len(t, snap.Offers.Offers, 3)
	assert.Nil(t, snap.Selected)

	require.NoError(t, c.SelectRoom(3))
	assert.Equal(t, domain.StepDetails, c.Step())
}

func assertDate(t *testing.T, expected *string, got *time.Time) {
	t.Helper()
	if expected == nil {
		assert.Nil(t, got)
		return
	}
	require.NotNil(t, got)
	assert.Equal(t, *expected, got.Format(domain.DateFormat))
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }
