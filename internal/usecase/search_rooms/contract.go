package search_rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// RoomRepository интерфейс каталога номеров
type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// Delay имитация сетевой задержки поиска
type Delay interface {
	Wait(ctx context.Context) error
}

// Metrics интерфейс метрик поиска
type Metrics interface {
	OffersReturned(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
