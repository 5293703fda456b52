package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/service/sessions"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/search_rooms"
	"github.com/m04kA/SMC-HotelBooking/internal/wizard"
)

// SessionIDVar имя параметра пути с идентификатором сессии
const SessionIDVar = "sessionId"

// MsgInvalidDateFormat сообщение о неверном формате даты
const MsgInvalidDateFormat = "invalid date format, expected YYYY-MM-DD"

const (
	msgInvalidSessionID = "invalid session id"
	msgSessionNotFound  = "wizard session not found or expired"
	msgBusy             = "another operation is in progress, try again shortly"
	msgWrongStep        = "operation is not available at the current step"
	msgConfirmed        = "booking is already confirmed"
	msgNoPreviousStep   = "already at the first step"
	msgInvalidStay      = "stay details are invalid"
	msgInvalidGuest     = "guest details are invalid"
	msgRoomNotOffered   = "selected room is not offered for these dates"
	msgAborted          = "operation was interrupted, please retry"
	msgInvalidSort      = "invalid sort key, expected one of: price, size, name"
	msgInvalidRoomType  = "invalid room type, expected one of: suite, deluxe, standard"
)

// SessionController находит контроллер сессии по {sessionId}.
// При ошибке отвечает клиенту сам и возвращает ok = false
func SessionController(w http.ResponseWriter, r *http.Request, svc SessionService, log Logger, route string) (*wizard.Controller, bool) {
	id := mux.Vars(r)[SessionIDVar]

	ctrl, err := svc.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			log.Warn("%s - Invalid session ID: %s", route, id)
			RespondBadRequest(w, msgInvalidSessionID)
		case errors.Is(err, sessions.ErrSessionNotFound):
			log.Warn("%s - Session not found: session_id=%s", route, id)
			RespondNotFound(w, msgSessionNotFound)
		default:
			log.Error("%s - Failed to get session: session_id=%s, error=%v", route, id, err)
			RespondInternalError(w)
		}
		return nil, false
	}

	return ctrl, true
}

// RespondWizardError отвечает на ошибку контроллера мастера и возвращает HTTP статус
func RespondWizardError(w http.ResponseWriter, err error) int {
	switch {
	case errors.Is(err, wizard.ErrBusy):
		RespondConflict(w, msgBusy)
		return http.StatusConflict

	case errors.Is(err, wizard.ErrConfirmed):
		RespondConflict(w, msgConfirmed)
		return http.StatusConflict

	case errors.Is(err, wizard.ErrWrongStep):
		RespondConflict(w, msgWrongStep)
		return http.StatusConflict

	case errors.Is(err, wizard.ErrNoPreviousStep):
		RespondConflict(w, msgNoPreviousStep)
		return http.StatusConflict

	case errors.Is(err, wizard.ErrInvalidStay):
		fields, _ := domain.AsFieldErrors(err)
		RespondUnprocessable(w, msgInvalidStay, nonEmpty(fields))
		return http.StatusUnprocessableEntity

	case errors.Is(err, wizard.ErrInvalidGuest):
		fields, _ := domain.AsFieldErrors(err)
		if errors.Is(err, domain.ErrTermsNotAccepted) && !fields.Has(domain.FieldTermsAccepted) {
			fields = domain.FieldErrors{domain.FieldTermsAccepted: domain.MsgTermsNotAccepted}
		}
		RespondUnprocessable(w, msgInvalidGuest, nonEmpty(fields))
		return http.StatusUnprocessableEntity

	case errors.Is(err, wizard.ErrRoomNotOffered):
		RespondUnprocessable(w, msgRoomNotOffered, nil)
		return http.StatusUnprocessableEntity

	case errors.Is(err, wizard.ErrSimulationAborted):
		RespondServiceUnavailable(w, msgAborted)
		return http.StatusServiceUnavailable

	default:
		RespondInternalError(w)
		return http.StatusInternalServerError
	}
}

// LogWizardError пишет в лог отказ мастера: клиентские ошибки в Warn, внутренние в Error
func LogWizardError(log Logger, route, sessionID string, status int, err error) {
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		log.Error("%s - Failed: session_id=%s, error=%v", route, sessionID, err)
		return
	}
	log.Warn("%s - Rejected: session_id=%s, status=%d, error=%v", route, sessionID, status, err)
}

// ParseViewOptions разбирает параметры отображения ?sort=&type=
func ParseViewOptions(r *http.Request) (search_rooms.ViewOptions, string, bool) {
	q := r.URL.Query()

	var opts search_rooms.ViewOptions

	key, err := search_rooms.ParseSortKey(q.Get("sort"))
	if err != nil {
		return opts, msgInvalidSort, false
	}
	opts.Sort = key

	if raw := q.Get("type"); raw != "" {
		t, ok := domain.ParseRoomType(raw)
		if !ok {
			return opts, msgInvalidRoomType, false
		}
		opts.Type = &t
	}

	return opts, "", true
}

// ParseDate разбирает дату YYYY-MM-DD как календарный день UTC
func ParseDate(s string) (*time.Time, error) {
	t, err := time.ParseInLocation(domain.DateFormat, s, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SnapshotResponse ответ с текущим состоянием сессии
func SnapshotResponse(ctrl *wizard.Controller, opts search_rooms.ViewOptions) WizardState {
	return FromSnapshot(ctrl.Snapshot(opts))
}
