package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	confirmBookingHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/confirm_booking"
	editGuestHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/edit_guest"
	editStayHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/edit_stay"
	getConfirmationHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_confirmation"
	getSessionHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/get_session"
	goBackHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/go_back"
	searchRoomsHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/search_rooms"
	selectRoomHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/select_room"
	startSessionHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/start_session"
	submitDatesHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/submit_dates"
	submitGuestHandler "github.com/m04kA/SMC-HotelBooking/internal/api/handlers/submit_guest"
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	confirmationRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/confirmation"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-HotelBooking/internal/service/sessions"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/confirm_booking"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/get_confirmation"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/search_rooms"
	"github.com/m04kA/SMC-HotelBooking/internal/wizard"
	"github.com/m04kA/SMC-HotelBooking/pkg/delay"
	"github.com/m04kA/SMC-HotelBooking/pkg/logger"
	"github.com/m04kA/SMC-HotelBooking/pkg/metrics"
)

// понедельник
var testNow = time.Date(2026, 10, 12, 15, 30, 0, 0, time.UTC)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newRouter(t *testing.T) *mux.Router {
	t.Helper()

	catalog, err := roomRepo.NewMemoryRepository([]domain.Room{
		{ID: 1, Name: "Classic Queen", NightlyRate: 120, Capacity: 2, SizeSqFt: 320, IsAvailable: true},
		{ID: 2, Name: "Deluxe King", NightlyRate: 220, Capacity: 3, SizeSqFt: 480, IsAvailable: true},
		{ID: 3, Name: "Garden Suite", NightlyRate: 480, Capacity: 6, SizeSqFt: 1100, IsAvailable: true},
		{ID: 4, Name: "Royal Suite", NightlyRate: 1500, Capacity: 8, SizeSqFt: 2400, IsAvailable: false},
	})
	require.NoError(t, err)

	log := logger.Discard()
	clock := fixedTime{testNow}
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	confirmations := confirmationRepo.NewMemoryRepository()

	searcher := search_rooms.NewUseCase(catalog, delay.None(), m, log)
	confirmer := confirm_booking.NewUseCase(confirmations, mailer.NewDisabled(log), delay.None(), m,
		confirm_booking.NewNumberGenerator(confirm_booking.DefaultPrefix), log).
		WithTimeProvider(clock)
	factory := wizard.NewFactory(searcher, confirmer, delay.None(), m, log).WithTimeProvider(clock)
	sessionSvc := sessions.NewService(factory, time.Hour, log).WithTimeProvider(clock)

	r := mux.NewRouter()
	Register(r, Handlers{
		StartSession:    startSessionHandler.NewHandler(sessionSvc, log),
		GetSession:      getSessionHandler.NewHandler(sessionSvc, log),
		EditStay:        editStayHandler.NewHandler(sessionSvc, log),
		SubmitDates:     submitDatesHandler.NewHandler(sessionSvc, log),
		SelectRoom:      selectRoomHandler.NewHandler(sessionSvc, log),
		EditGuest:       editGuestHandler.NewHandler(sessionSvc, log),
		SubmitGuest:     submitGuestHandler.NewHandler(sessionSvc, log),
		ConfirmBooking:  confirmBookingHandler.NewHandler(sessionSvc, log),
		GoBack:          goBackHandler.NewHandler(sessionSvc, log),
		SearchRooms:     searchRoomsHandler.NewHandler(searcher, clock, log),
		GetConfirmation: getConfirmationHandler.NewHandler(get_confirmation.NewUseCase(confirmations, log), log),
	})

	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

const validGuest = `{
	"firstName": "Ada",
	"lastName": "Lovelace",
	"email": "ada@example.com",
	"phone": "+44 20 7946 0958",
	"country": "GB",
	"termsAccepted": true
}`

func TestWizardAPI_HappyPath(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodPost, "/api/v1/wizard/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	state := decode[handlers.WizardState](t, rec)
	assert.Equal(t, "dates", state.Step)
	assert.False(t, state.CanAdvance)
	assert.Equal(t, "/api/v1/wizard/sessions/"+state.SessionID, rec.Header().Get("Location"))

	base := "/api/v1/wizard/sessions/" + state.SessionID

	rec = do(t, r, http.MethodPatch, base+"/dates", `{"checkIn":"2026-10-14","checkOut":"2026-10-16","guests":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	state = decode[handlers.WizardState](t, rec)
	require.NotNil(t, state.Stay.CheckIn)
	assert.Equal(t, "2026-10-14", *state.Stay.CheckIn)
	assert.Equal(t, 2, state.Stay.Nights)
	assert.True(t, state.CanAdvance)
	assert.Empty(t, state.Stay.Errors)

	rec = do(t, r, http.MethodPost, base+"/dates", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	state = decode[handlers.WizardState](t, rec)
	assert.Equal(t, "rooms", state.Step)
	require.NotNil(t, state.Offers)
	require.Len(t, state.Offers.Items, 3)
	assert.Equal(t, int64(1), state.Offers.Items[0].RoomID)
	assert.Equal(t, int64(240), state.Offers.Items[0].TotalPrice)

	rec = do(t, r, http.MethodGet, base+"?type=suite&sort=name", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	state = decode[handlers.WizardState](t, rec)
	require.Len(t, state.Offers.Items, 1)
	assert.Equal(t, "Garden Suite", state.Offers.Items[0].Name)
	assert.Equal(t, 3, state.Offers.Total)

	rec = do(t, r, http.MethodPost, base+"/room", `{"roomId":4}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, r, http.MethodPost, base+"/room", `{"roomId":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	state = decode[handlers.WizardState](t, rec)
	assert.Equal(t, "details", state.Step)
	assert.Equal(t, int64(440), state.TotalPrice)
	assert.Contains(t, state.Link, "roomId=2")

	rec = do(t, r, http.MethodPost, base+"/guest", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errResp := decode[handlers.ErrorResponse](t, rec)
	assert.Contains(t, errResp.Fields, domain.FieldFirstName)
	assert.Contains(t, errResp.Fields, domain.FieldTermsAccepted)

	rec = do(t, r, http.MethodPatch, base+"/guest", validGuest)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	state = decode[handlers.WizardState](t, rec)
	require.NotNil(t, state.Guest)
	assert.Empty(t, state.Guest.Errors)
	assert.True(t, state.CanAdvance)

	rec = do(t, r, http.MethodPost, base+"/guest", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "confirm", decode[handlers.WizardState](t, rec).Step)

	rec = do(t, r, http.MethodPost, base+"/confirm", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	state = decode[handlers.WizardState](t, rec)
	assert.Equal(t, "done", state.Step)
	require.NotNil(t, state.Confirmation)
	assert.Regexp(t, `^LUX-\d{6}-[0-9a-f]{6}$`, state.Confirmation.Number)
	assert.Equal(t, int64(440), state.Confirmation.TotalPrice)
	assert.Equal(t, "Ada", state.Confirmation.Guest.FirstName)

	rec = do(t, r, http.MethodPost, base+"/back", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, r, http.MethodGet, "/api/v1/confirmations/"+state.Confirmation.Number, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	conf := decode[handlers.Confirmation](t, rec)
	assert.Equal(t, "2026-10-14", conf.CheckIn)
	assert.Equal(t, "Deluxe King", conf.Room.Name)
}

func TestWizardAPI_SubmitEmptyDates(t *testing.T) {
	r := newRouter(t)
	state := decode[handlers.WizardState](t, do(t, r, http.MethodPost, "/api/v1/wizard/sessions", ""))

	rec := do(t, r, http.MethodPost, "/api/v1/wizard/sessions/"+state.SessionID+"/dates", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	errResp := decode[handlers.ErrorResponse](t, rec)
	assert.Contains(t, errResp.Fields, domain.FieldCheckIn)
	assert.Contains(t, errResp.Fields, domain.FieldCheckOut)
}

func TestWizardAPI_WrongStepAndBack(t *testing.T) {
	r := newRouter(t)
	state := decode[handlers.WizardState](t, do(t, r, http.MethodPost, "/api/v1/wizard/sessions", ""))
	base := "/api/v1/wizard/sessions/" + state.SessionID

	assert.Equal(t, http.StatusConflict, do(t, r, http.MethodPost, base+"/confirm", "").Code)
	assert.Equal(t, http.StatusConflict, do(t, r, http.MethodPatch, base+"/guest", validGuest).Code)
	assert.Equal(t, http.StatusConflict, do(t, r, http.MethodPost, base+"/back", "").Code)
}

func TestWizardAPI_DeepLink(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodPost, "/api/v1/wizard/sessions?checkIn=2026-10-14&checkOut=2026-10-16&guests=2&roomId=3", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	state := decode[handlers.WizardState](t, rec)
	assert.Equal(t, "details", state.Step)
	require.NotNil(t, state.Selected)
	assert.Equal(t, int64(3), state.Selected.RoomID)

	rec = do(t, r, http.MethodPost, "/api/v1/wizard/sessions/"+state.SessionID+"/back", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	state = decode[handlers.WizardState](t, rec)
	assert.Equal(t, "rooms", state.Step)
	require.NotNil(t, state.Offers)
	assert.Len(t, state.Offers.Items, 3)
}

func TestWizardAPI_DeepLinkMalformed(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodPost, "/api/v1/wizard/sessions?checkIn=yesterday&guests=abc", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	state := decode[handlers.WizardState](t, rec)
	assert.Equal(t, "dates", state.Step)
	assert.Equal(t, 1, state.Stay.Guests)
}

func TestWizardAPI_SessionLookup(t *testing.T) {
	r := newRouter(t)

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/api/v1/wizard/sessions/not-a-uuid", "").Code)
	assert.Equal(t, http.StatusNotFound,
		do(t, r, http.MethodGet, "/api/v1/wizard/sessions/6f1c1d9e-5c1a-4c1e-9d55-6a8f0f4f3b2a", "").Code)
}

func TestWizardAPI_BadRequests(t *testing.T) {
	r := newRouter(t)
	state := decode[handlers.WizardState](t, do(t, r, http.MethodPost, "/api/v1/wizard/sessions", ""))
	base := "/api/v1/wizard/sessions/" + state.SessionID

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPatch, base+"/dates", `{"checkIn":"14.10.2026"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPatch, base+"/dates", `{"unknown":1}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPost, base+"/room", `{"roomId":0}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, base+"?sort=rating", "").Code)
}

func TestSearchRoomsAPI(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodGet, "/api/v1/rooms?checkIn=2026-10-16&checkOut=2026-10-23&guests=3&sort=size", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Query struct {
			Nights int `json:"nights"`
		} `json:"query"`
		Offers handlers.OffersView `json:"offers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 7, resp.Query.Nights)
	assert.Equal(t, "size", resp.Offers.Sort)
	require.Len(t, resp.Offers.Items, 2)
	assert.Equal(t, "Garden Suite", resp.Offers.Items[0].Name)

	// пятница, 7 ночей: 220 * 7 * 1.2 = 1848, со скидкой 1663
	deluxe := resp.Offers.Items[1]
	assert.True(t, deluxe.WeekendSurcharge)
	assert.True(t, deluxe.LongStayDiscount)
	require.NotNil(t, deluxe.DiscountedPrice)
	assert.Equal(t, int64(1848), *deluxe.DiscountedPrice)
	assert.Equal(t, int64(1663), deluxe.TotalPrice)
}

func TestSearchRoomsAPI_Errors(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{name: "missing dates", query: "", status: http.StatusUnprocessableEntity},
		{name: "check-in in the past", query: "checkIn=2026-10-01&checkOut=2026-10-03", status: http.StatusUnprocessableEntity},
		{name: "same day", query: "checkIn=2026-10-14&checkOut=2026-10-14", status: http.StatusUnprocessableEntity},
		{name: "too many guests", query: "checkIn=2026-10-14&checkOut=2026-10-16&guests=9", status: http.StatusUnprocessableEntity},
		{name: "bad date", query: "checkIn=14-10-2026&checkOut=2026-10-16", status: http.StatusBadRequest},
		{name: "bad guests", query: "checkIn=2026-10-14&checkOut=2026-10-16&guests=two", status: http.StatusBadRequest},
		{name: "bad type", query: "checkIn=2026-10-14&checkOut=2026-10-16&type=villa", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, http.MethodGet, "/api/v1/rooms?"+tt.query, "")
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestSearchRoomsAPI_InvalidStayReturnsFieldErrors(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodGet, "/api/v1/rooms?checkOut=2026-10-16&guests=9", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	errResp := decode[handlers.ErrorResponse](t, rec)
	assert.Equal(t, domain.MsgCheckInRequired, errResp.Fields[domain.FieldCheckIn])
	assert.Equal(t, domain.MsgGuestsOutOfRange, errResp.Fields[domain.FieldGuests])
	assert.NotContains(t, errResp.Fields, domain.FieldCheckOut)
}

func TestGetConfirmationAPI_NotFound(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodGet, "/api/v1/confirmations/LUX-000000-000000", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
