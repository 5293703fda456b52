package get_confirmation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	getConfirmation "github.com/m04kA/SMC-HotelBooking/internal/usecase/get_confirmation"
)

const (
	msgInvalidNumber = "invalid confirmation number"
	msgNotFound      = "confirmation not found"
)

type Handler struct {
	useCase GetConfirmationUseCase
	logger  Logger
}

func NewHandler(useCase GetConfirmationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/confirmations/{number}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	rec, err := h.useCase.Execute(r.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, getConfirmation.ErrInvalidInput):
			h.logger.Warn("GET /confirmations/{number} - Invalid number: %q", number)
			handlers.RespondBadRequest(w, msgInvalidNumber)

		case errors.Is(err, getConfirmation.ErrConfirmationNotFound):
			h.logger.Warn("GET /confirmations/{number} - Not found: number=%s", number)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /confirmations/{number} - Failed to get confirmation: number=%s, error=%v", number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /confirmations/{number} - Confirmation retrieved: number=%s", number)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromConfirmation(*rec))
}
