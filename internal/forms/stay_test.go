package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/pkg/ptr"
)

var testNow = time.Date(2026, 10, 12, 15, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2026, 10, 12+offset, 0, 0, 0, 0, time.UTC)
}

func TestStayForm_SetCheckIn_AutoAdvancesCheckOut(t *testing.T) {
	tests := []struct {
		name        string
		checkOut    time.Time
		newCheckIn  time.Time
		expectedOut time.Time
	}{
		{"equal moves forward", day(3), day(3), day(4)},
		{"earlier moves forward", day(3), day(5), day(6)},
		{"later stays", day(5), day(2), day(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewStayForm()
			f.SetCheckIn(day(1))
			f.SetCheckOut(tt.checkOut)

			f.SetCheckIn(tt.newCheckIn)

			require.NotNil(t, f.CheckOut())
			assert.Equal(t, tt.expectedOut, *f.CheckOut())
		})
	}
}

func TestStayForm_SetCheckIn_WithoutCheckOut(t *testing.T) {
	f := NewStayForm()
	f.SetCheckIn(day(1))

	assert.Nil(t, f.CheckOut())
	assert.False(t, f.CanProceed(testNow))
	assert.True(t, f.Errors(testNow).Empty())
}

func TestStayForm_SetCheckOut_IsNotCorrected(t *testing.T) {
	f := NewStayForm()
	f.SetCheckIn(day(3))
	f.SetCheckOut(day(3))

	assert.Equal(t, domain.MsgSameDayCheckOut, f.Errors(testNow)[domain.FieldCheckOut])

	f.SetCheckOut(day(2))
	assert.Equal(t, domain.MsgCheckOutBefore, f.Errors(testNow)[domain.FieldCheckOut])
	assert.False(t, f.CanProceed(testNow))

	// ошибка исчезает, как только поле становится валидным
	f.SetCheckOut(day(4))
	assert.True(t, f.Errors(testNow).Empty())
	assert.True(t, f.CanProceed(testNow))
}

func TestStayForm_PastCheckIn(t *testing.T) {
	f := NewStayForm()
	f.SetCheckIn(day(-1))
	f.SetCheckOut(day(2))

	assert.Equal(t, domain.MsgCheckInInPast, f.Errors(testNow)[domain.FieldCheckIn])

	_, err := f.Query(testNow)
	assert.ErrorIs(t, err, domain.ErrInvalidStay)
}

func TestStayForm_GuestsClamped(t *testing.T) {
	f := NewStayForm()
	assert.Equal(t, 1, f.Guests())

	f.DecrementGuests()
	assert.Equal(t, 1, f.Guests())

	for i := 0; i < 20; i++ {
		f.IncrementGuests()
	}
	assert.Equal(t, domain.MaxGuests, f.Guests())

	f.SetGuests(-3)
	assert.Equal(t, domain.MinGuests, f.Guests())
}

func TestStayForm_Apply(t *testing.T) {
	f := NewStayForm()

	changed := f.Apply(StayPatch{
		CheckIn:     ptr.Ptr(day(2)),
		CheckOut:    ptr.Ptr(day(4)),
		Guests:      ptr.Ptr(2),
		GuestsDelta: 1,
	})
	assert.True(t, changed)
	assert.Equal(t, 3, f.Guests())

	q, err := f.Query(testNow)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Nights())
	assert.Equal(t, 3, q.Guests)

	assert.False(t, f.Apply(StayPatch{CheckIn: ptr.Ptr(day(2))}))

	assert.True(t, f.Apply(StayPatch{ClearCheckOut: true}))
	assert.Nil(t, f.CheckOut())
}

func TestStayForm_Prefill_KeepsPartialValues(t *testing.T) {
	f := NewStayForm()
	f.Prefill(ptr.Ptr(day(5)), nil, 42)

	require.NotNil(t, f.CheckIn())
	assert.Equal(t, day(5), *f.CheckIn())
	assert.Nil(t, f.CheckOut())
	assert.Equal(t, domain.MaxGuests, f.Guests())
}

func TestNewStayFormFromQuery(t *testing.T) {
	q, err := domain.NewStayQuery(day(1), day(3), 4, testNow)
	require.NoError(t, err)

	f := NewStayFormFromQuery(q)
	got, err := f.Query(testNow)
	require.NoError(t, err)
	assert.True(t, q.Equal(got))
}
