package wizard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/confirm_booking"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/search_rooms"
)

// RoomSearcher поиск доступных номеров
type RoomSearcher interface {
	Execute(ctx context.Context, query domain.StayQuery) (*search_rooms.Response, error)
	Quote(ctx context.Context, query domain.StayQuery, roomID int64) (*domain.RoomOffer, error)
}

// Confirmer выпуск подтверждения
type Confirmer interface {
	Execute(ctx context.Context, req *confirm_booking.Request) (*domain.ConfirmationRecord, error)
}

// Delay имитация отправки анкеты гостя
type Delay interface {
	Wait(ctx context.Context) error
}

// Metrics интерфейс метрик мастера
type Metrics interface {
	WizardTransition(from, to string)
	WizardRejection(operation, reason string)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
