package search_rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	searchRooms "github.com/m04kA/SMC-HotelBooking/internal/usecase/search_rooms"
)

type SearchRoomsUseCase interface {
	Execute(ctx context.Context, query domain.StayQuery) (*searchRooms.Response, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
