package delay

import (
	"context"
	"errors"
	"time"
)

// ErrAborted возвращается, если ожидание прервано отменой контекста
var ErrAborted = errors.New("delay: aborted")

// Simulator имитирует сетевую задержку фиксированной длительности
type Simulator struct {
	d time.Duration
}

// New создает симулятор задержки. Нулевая или отрицательная длительность означает отсутствие задержки
func New(d time.Duration) *Simulator {
	return &Simulator{d: d}
}

// None симулятор без задержки
func None() *Simulator {
	return &Simulator{}
}

// Duration возвращает длительность задержки
func (s *Simulator) Duration() time.Duration {
	return s.d
}

// Wait блокируется на длительность задержки или до отмены контекста
func (s *Simulator) Wait(ctx context.Context) error {
	if s.d <= 0 {
		if err := ctx.Err(); err != nil {
			return errors.Join(ErrAborted, err)
		}
		return nil
	}

	timer := time.NewTimer(s.d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return errors.Join(ErrAborted, ctx.Err())
	}
}
