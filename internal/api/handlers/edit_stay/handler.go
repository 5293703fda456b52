package edit_stay

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/search_rooms"
)

const (
	route                 = "PATCH /wizard/sessions/{id}/dates"
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

// Handle PATCH /api/v1/wizard/sessions/{sessionId}/dates
// Живое редактирование формы дат: ответ содержит текущие значения и ошибки полей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EditStayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		h.logger.Warn("%s - Invalid date: %v", route, err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDateFormat)
		return
	}

	ctrl, ok := handlers.SessionController(w, r, h.service, h.logger, route)
	if !ok {
		return
	}

	if err := ctrl.EditStay(patch); err != nil {
		status := handlers.RespondWizardError(w, err)
		handlers.LogWizardError(h.logger, route, ctrl.ID(), status, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.SnapshotResponse(ctrl, search_rooms.ViewOptions{}))
}
