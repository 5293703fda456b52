package sessions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/wizard"
)

// ControllerFactory фабрика контроллеров мастера
type ControllerFactory interface {
	New(id string) *wizard.Controller
	FromLink(ctx context.Context, id string, params wizard.LinkParams) *wizard.Controller
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
