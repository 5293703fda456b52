package start_session

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/search_rooms"
	"github.com/m04kA/SMC-HotelBooking/internal/wizard"
)

type Handler struct {
	service SessionStarter
	logger  Logger
}

func NewHandler(service SessionStarter, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/sessions
// Query params (optional, deep link): checkIn, checkOut, guests, roomId.
// Некорректные параметры игнорируются, мастер открывается на самом дальнем достижимом шаге
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	params := wizard.ParseLink(r.URL.Query())

	ctrl := h.service.Start(r.Context(), params)
	state := handlers.SnapshotResponse(ctrl, search_rooms.ViewOptions{})

	h.logger.Info("POST /wizard/sessions - Session started: session_id=%s, step=%s, deep_link=%t",
		state.SessionID, state.Step, !params.IsEmpty())

	w.Header().Set("Location", "/api/v1/wizard/sessions/"+state.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, state)
}
