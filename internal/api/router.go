package api

import (
	"net/http"

	"github.com/gorilla/mux"

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
)

// Handlers обработчики API v1
type Handlers struct {
	StartSession    *startSessionHandler.Handler
	GetSession      *getSessionHandler.Handler
	EditStay        *editStayHandler.Handler
	SubmitDates     *submitDatesHandler.Handler
	SelectRoom      *selectRoomHandler.Handler
	EditGuest       *editGuestHandler.Handler
	SubmitGuest     *submitGuestHandler.Handler
	ConfirmBooking  *confirmBookingHandler.Handler
	GoBack          *goBackHandler.Handler
	SearchRooms     *searchRoomsHandler.Handler
	GetConfirmation *getConfirmationHandler.Handler
}

// Register регистрирует маршруты API v1 на роутере
func Register(r *mux.Router, h Handlers) {
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Мастер бронирования ---
	api.HandleFunc("/wizard/sessions", h.StartSession.Handle).Methods(http.MethodPost)

	api.HandleFunc("/wizard/sessions/{sessionId}", h.GetSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/wizard/sessions/{sessionId}/dates", h.EditStay.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/wizard/sessions/{sessionId}/dates", h.SubmitDates.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{sessionId}/room", h.SelectRoom.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{sessionId}/guest", h.EditGuest.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/wizard/sessions/{sessionId}/guest", h.SubmitGuest.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{sessionId}/confirm", h.ConfirmBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{sessionId}/back", h.GoBack.Handle).Methods(http.MethodPost)

	// --- Публичные ресурсы ---
	api.HandleFunc("/rooms", h.SearchRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/confirmations/{number}", h.GetConfirmation.Handle).Methods(http.MethodGet)
}
