package select_room

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/search_rooms"
)

const (
	route                 = "POST /wizard/sessions/{id}/room"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRoomID      = "roomId must be a positive integer"
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

// Handle POST /api/v1/wizard/sessions/{sessionId}/room
// Переход Rooms -> Details: номер должен быть в текущем результате поиска
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.RoomID <= 0 {
		h.logger.Warn("%s - Invalid room ID: %d", route, req.RoomID)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	ctrl, ok := handlers.SessionController(w, r, h.service, h.logger, route)
	if !ok {
		return
	}

	if err := ctrl.SelectRoom(req.RoomID); err != nil {
		status := handlers.RespondWizardError(w, err)
		handlers.LogWizardError(h.logger, route, ctrl.ID(), status, err)
		return
	}

	h.logger.Info("%s - Room selected: session_id=%s, room_id=%d", route, ctrl.ID(), req.RoomID)
	handlers.RespondJSON(w, http.StatusOK, handlers.SnapshotResponse(ctrl, search_rooms.ViewOptions{}))
}
