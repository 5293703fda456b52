package wizard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/forms"
	confirmationRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/confirmation"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/confirm_booking"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/search_rooms"
	"github.com/m04kA/SMC-HotelBooking/pkg/delay"
	"github.com/m04kA/SMC-HotelBooking/pkg/logger"
	"github.com/m04kA/SMC-HotelBooking/pkg/ptr"
)

// понедельник
var testNow = time.Date(2026, 10, 12, 15, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2026, 10, 12+offset, 0, 0, 0, 0, time.UTC)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeMetrics struct {
	mu          sync.Mutex
	transitions []string
	rejections  []string
}

func (m *fakeMetrics) WizardTransition(from, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions = append(m.transitions, from+"->"+to)
}

func (m *fakeMetrics) WizardRejection(operation, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejections = append(m.rejections, operation+":"+reason)
}

func (m *fakeMetrics) OffersReturned(n int) {}

func (m *fakeMetrics) ConfirmationIssued() {}

type nopNotifier struct{}

func (nopNotifier) SendConfirmation(ctx context.Context, rec domain.ConfirmationRecord) error {
	return nil
}

// gate задержка, которая ждет явного разрешения
type gate struct {
	started chan struct{}
	release chan struct{}
}

func newGate() *gate {
	return &gate{started: make(chan struct{}, 1), release: make(chan struct{})}
}

func (g *gate) Wait(ctx context.Context) error {
	g.started <- struct{}{}
	select {
	case <-g.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type delays struct {
	search  search_rooms.Delay
	submit  Delay
	confirm confirm_booking.Delay
}

type testEnv struct {
	factory       *Factory
	searcher      *search_rooms.UseCase
	metrics       *fakeMetrics
	confirmations *confirmationRepo.MemoryRepository
}

func newEnv(t *testing.T, d delays) *testEnv {
	t.Helper()

	if d.search == nil {
		d.search = delay.None()
	}
	if d.submit == nil {
		d.submit = delay.None()
	}
	if d.confirm == nil {
		d.confirm = delay.None()
	}

	catalog, err := roomRepo.NewMemoryRepository([]domain.Room{
		{ID: 1, Name: "Classic Queen", NightlyRate: 120, Capacity: 2, SizeSqFt: 320, IsAvailable: true},
		{ID: 2, Name: "Deluxe King", NightlyRate: 220, Capacity: 3, SizeSqFt: 480, IsAvailable: true},
		{ID: 3, Name: "Garden Suite", NightlyRate: 480, Capacity: 6, SizeSqFt: 1100, IsAvailable: true},
		{ID: 4, Name: "Royal Suite", NightlyRate: 1500, Capacity: 8, SizeSqFt: 2400, IsAvailable: false},
	})
	require.NoError(t, err)

	m := &fakeMetrics{}
	log := logger.Discard()
	confirmations := confirmationRepo.NewMemoryRepository()

	searcher := search_rooms.NewUseCase(catalog, d.search, m, log)
	confirmer := confirm_booking.NewUseCase(confirmations, nopNotifier{}, d.confirm, m,
		confirm_booking.NewNumberGenerator("LUX"), log).
		WithTimeProvider(fixedTime{testNow})

	return &testEnv{
		factory: NewFactory(searcher, confirmer, d.submit, m, log).
			WithTimeProvider(fixedTime{testNow}),
		searcher:      searcher,
		metrics:       m,
		confirmations: confirmations,
	}
}

func validGuestPatch() forms.GuestPatch {
	return forms.GuestPatch{
		FirstName:     ptr.Ptr("Ada"),
		LastName:      ptr.Ptr("Lovelace"),
		Email:         ptr.Ptr("ada@example.com"),
		Phone:         ptr.Ptr("+44 20 7946 0958"),
		Country:       ptr.Ptr("GB"),
		TermsAccepted: ptr.Ptr(true),
	}
}

func stayPatch(checkIn, checkOut time.Time, guests int) forms.StayPatch {
	return forms.StayPatch{
		CheckIn:  ptr.Ptr(checkIn),
		CheckOut: ptr.Ptr(checkOut),
		Guests:   ptr.Ptr(guests),
	}
}

// toDetails проводит мастер по шагам до Details с выбранным номером
func toDetails(t *testing.T, c *Controller, checkIn, checkOut time.Time, guests int, roomID int64) {
	t.Helper()

	require.NoError(t, c.EditStay(stayPatch(checkIn, checkOut, guests)))
	require.NoError(t, c.SubmitDates(context.Background()))
	require.NoError(t, c.SelectRoom(roomID))
	require.Equal(t, domain.StepDetails, c.Step())
}
