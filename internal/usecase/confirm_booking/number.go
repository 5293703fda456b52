package confirm_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultPrefix префикс номера подтверждения по умолчанию
	DefaultPrefix = "LUX"

	// maxNumberAttempts количество попыток подобрать свободный номер
	maxNumberAttempts = 5
)

// NumberGenerator генерирует номер подтверждения для момента выпуска
type NumberGenerator func(issuedAt time.Time) string

// NewNumberGenerator номера вида PREFIX-123456-a1b2c3: последние 6 цифр
// времени выпуска в миллисекундах и 6 hex-символов случайного UUID
func NewNumberGenerator(prefix string) NumberGenerator {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return func(issuedAt time.Time) string {
		return fmt.Sprintf("%s-%06d-%s", prefix, issuedAt.UnixMilli()%1_000_000, randomSuffix())
	}
}

func randomSuffix() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:6]
}
