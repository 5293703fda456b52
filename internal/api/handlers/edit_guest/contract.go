package edit_guest

import "github.com/m04kA/SMC-HotelBooking/internal/wizard"

type SessionService interface {
	Get(id string) (*wizard.Controller, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
