package confirm_booking

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/search_rooms"
)

const route = "POST /wizard/sessions/{id}/confirm"

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

// Handle POST /api/v1/wizard/sessions/{sessionId}/confirm
// Выпускает подтверждение. После успеха сессия терминальна
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := handlers.SessionController(w, r, h.service, h.logger, route)
	if !ok {
		return
	}

	rec, err := ctrl.Confirm(r.Context())
	if err != nil {
		status := handlers.RespondWizardError(w, err)
		handlers.LogWizardError(h.logger, route, ctrl.ID(), status, err)
		return
	}

	h.logger.Info("%s - Booking confirmed: session_id=%s, number=%s, total=%d",
		route, ctrl.ID(), rec.Number(), rec.TotalPrice())
	handlers.RespondJSON(w, http.StatusCreated, handlers.SnapshotResponse(ctrl, search_rooms.ViewOptions{}))
}
