package get_confirmation

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// ConfirmationRepository интерфейс хранилища подтверждений
type ConfirmationRepository interface {
	GetByNumber(ctx context.Context, number string) (domain.ConfirmationRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
