package edit_guest

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/search_rooms"
)

const (
	route                 = "PATCH /wizard/sessions/{id}/guest"
	msgInvalidRequestBody = "invalid request body"
)

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

// Handle PATCH /api/v1/wizard/sessions/{sessionId}/guest
// Живое редактирование анкеты: ошибки показываются для измененных полей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EditGuestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ctrl, ok := handlers.SessionController(w, r, h.service, h.logger, route)
	if !ok {
		return
	}

	if err := ctrl.EditGuest(req.ToPatch()); err != nil {
		status := handlers.RespondWizardError(w, err)
		handlers.LogWizardError(h.logger, route, ctrl.ID(), status, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.SnapshotResponse(ctrl, search_rooms.ViewOptions{}))
}
