package search_rooms

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	searchRooms "github.com/m04kA/SMC-HotelBooking/internal/usecase/search_rooms"
)

const (
	route           = "GET /rooms"
	msgInvalidGuest = "guests must be an integer"
	msgInvalidStay  = "stay details are invalid"
	msgAborted      = "search was interrupted, please retry"
)

type Handler struct {
	useCase SearchRoomsUseCase
	clock   TimeProvider
	logger  Logger
}

func NewHandler(useCase SearchRoomsUseCase, clock TimeProvider, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		clock:   clock,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
// Query params: checkIn, checkOut (required, YYYY-MM-DD), guests (default 1), sort, type
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts, msg, ok := handlers.ParseViewOptions(r)
	if !ok {
		h.logger.Warn("%s - Invalid view options: %s", route, r.URL.RawQuery)
		handlers.RespondBadRequest(w, msg)
		return
	}

	checkIn, checkOut, err := parseDates(q.Get("checkIn"), q.Get("checkOut"))
	if err != nil {
		h.logger.Warn("%s - Invalid date: %v", route, err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDateFormat)
		return
	}

	guests := domain.MinGuests
	if raw := q.Get("guests"); raw != "" {
		guests, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("%s - Invalid guests: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidGuest)
			return
		}
	}

	query, err := domain.NewStayQuery(checkIn, checkOut, guests, h.clock.Now())
	if err != nil {
		fe, _ := domain.AsFieldErrors(err)
		h.logger.Warn("%s - Invalid stay: %v", route, err)
		handlers.RespondUnprocessable(w, msgInvalidStay, fe)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, searchRooms.ErrInvalidInput):
			h.logger.Warn("%s - Invalid stay: %v", route, err)
			handlers.RespondUnprocessable(w, msgInvalidStay, nil)

		case errors.Is(err, searchRooms.ErrAborted):
			h.logger.Warn("%s - Search aborted: %v", route, err)
			handlers.RespondServiceUnavailable(w, msgAborted)

		default:
			h.logger.Error("%s - Failed to search rooms: error=%v", route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	view := searchRooms.Arrange(resp.Offers, opts)

	h.logger.Info("%s - Rooms found: check_in=%s, nights=%d, guests=%d, offers=%d, shown=%d",
		route, query.CheckIn.Format(domain.DateFormat), query.Nights(), query.Guests, view.Total, len(view.Offers))
	handlers.RespondJSON(w, http.StatusOK, SearchRoomsResponse{
		Query:  fromQuery(resp.Query),
		Offers: handlers.FromView(view),
	})
}

// parseDates разбирает даты; пустое значение дает нулевую дату, которая валидируется как отсутствующая
func parseDates(rawIn, rawOut string) (time.Time, time.Time, error) {
	var checkIn, checkOut time.Time

	if rawIn != "" {
		d, err := handlers.ParseDate(rawIn)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		checkIn = *d
	}
	if rawOut != "" {
		d, err := handlers.ParseDate(rawOut)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		checkOut = *d
	}

	return checkIn, checkOut, nil
}
