package start_session

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/wizard"
)

type SessionStarter interface {
	Start(ctx context.Context, params wizard.LinkParams) *wizard.Controller
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
