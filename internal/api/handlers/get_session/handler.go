package get_session

import (
	"net/http"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
)

const route = "GET /wizard/sessions/{id}"

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

// Handle GET /api/v1/wizard/sessions/{sessionId}
// Query params: sort (price|size|name), type (suite|deluxe|standard)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	opts, msg, ok := handlers.ParseViewOptions(r)
	if !ok {
		h.logger.Warn("%s - Invalid view options: %s", route, r.URL.RawQuery)
		handlers.RespondBadRequest(w, msg)
		return
	}

	ctrl, ok := handlers.SessionController(w, r, h.service, h.logger, route)
	if !ok {
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.SnapshotResponse(ctrl, opts))
}
