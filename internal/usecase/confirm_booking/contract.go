package confirm_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// ConfirmationRepository интерфейс хранилища подтверждений
type ConfirmationRepository interface {
	Create(ctx context.Context, rec domain.ConfirmationRecord) error
	Exists(ctx context.Context, number string) (bool, error)
}

// Notifier внешний получатель выпущенного подтверждения (отправка письма)
type Notifier interface {
	SendConfirmation(ctx context.Context, rec domain.ConfirmationRecord) error
}

// Delay имитация обработки подтверждения
type Delay interface {
	Wait(ctx context.Context) error
}

// Metrics интерфейс метрик подтверждений
type Metrics interface {
	ConfirmationIssued()
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
