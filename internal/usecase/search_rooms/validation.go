package search_rooms

import (
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// validateQuery проверяет структурную корректность запроса.
// Сравнение с текущей датой выполнено при создании StayQuery
func validateQuery(q domain.StayQuery) error {
	if q.IsZero() {
		return fmt.Errorf("%w: query is empty", ErrInvalidInput)
	}

	if q.Nights() < 1 {
		return fmt.Errorf("%w: check-out must be after check-in", ErrInvalidInput)
	}

	if q.Guests < domain.MinGuests || q.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: guests must be between %d and %d", ErrInvalidInput, domain.MinGuests, domain.MaxGuests)
	}

	return nil
}

// ParseSortKey конвертирует строку в ключ сортировки. Пустая строка означает сортировку по цене
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "", SortByPrice:
		return SortByPrice, nil
	case SortBySize:
		return SortBySize, nil
	case SortByName:
		return SortByName, nil
	default:
		return "", fmt.Errorf("%w: unknown sort key %q", ErrInvalidInput, s)
	}
}
