package search_rooms

import "github.com/m04kA/SMC-HotelBooking/internal/domain"

// Response результат поиска: предложения, рассчитанные для запроса, упорядоченные по цене
type Response struct {
	Query  domain.StayQuery
	Offers []domain.RoomOffer
}

// SortKey ключ сортировки для отображения
type SortKey string

const (
	SortByPrice SortKey = "price"
	SortBySize  SortKey = "size"
	SortByName  SortKey = "name"
)

// ViewOptions параметры отображения списка предложений
type ViewOptions struct {
	Sort SortKey
	Type *domain.RoomType
}

// View упорядоченный и отфильтрованный список для отображения.
// Пустой список не является ошибкой: Suggestion подсказывает, что делать дальше
type View struct {
	Offers     []domain.RoomOffer
	Total      int
	Sort       SortKey
	Type       *domain.RoomType
	Suggestion string
}

// Подсказки для пустого результата
const (
	SuggestionChangeDates  = "No rooms are available for these dates and guests. Try different dates."
	SuggestionClearFilters = "No rooms match the selected type. Clear the filter or try different dates."
)
