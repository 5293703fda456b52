package submit_dates

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/search_rooms"
)

const route = "POST /wizard/sessions/{id}/dates"

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/sessions/{sessionId}/dates
// Переход Dates -> Rooms: валидирует форму дат и выполняет поиск номеров
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := handlers.SessionController(w, r, h.service, h.logger, route)
	if !ok {
		return
	}

	if err := ctrl.SubmitDates(r.Context()); err != nil {
		status := handlers.RespondWizardError(w, err)
		handlers.LogWizardError(h.logger, route, ctrl.ID(), status, err)
		return
	}

	state := handlers.SnapshotResponse(ctrl, search_rooms.ViewOptions{})

	h.logger.Info("%s - Dates submitted: session_id=%s, step=%s", route, ctrl.ID(), state.Step)
	handlers.RespondJSON(w, http.StatusOK, state)
}
