package get_confirmation

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

type GetConfirmationUseCase interface {
	Execute(ctx context.Context, number string) (*domain.ConfirmationRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
