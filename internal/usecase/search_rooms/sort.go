package search_rooms

import (
	"sort"
	"strings"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Arrange сортирует и фильтрует предложения для отображения. Исходный слайс не изменяется
func Arrange(offers []domain.RoomOffer, opts ViewOptions) View {
	key := opts.Sort
	if key == "" {
		key = SortByPrice
	}

	res := make([]domain.RoomOffer, 0, len(offers))
	for _, o := range offers {
		if opts.Type != nil && o.Room.Type() != *opts.Type {
			continue
		}
		res = append(res, o.Clone())
	}

	sort.SliceStable(res, less(res, key))

	view := View{
		Offers: res,
		Total:  len(offers),
		Sort:   key,
		Type:   opts.Type,
	}

	switch {
	case len(offers) == 0:
		view.Suggestion = SuggestionChangeDates
	case len(res) == 0:
		view.Suggestion = SuggestionClearFilters
	}

	return view
}

func less(offers []domain.RoomOffer, key SortKey) func(i, j int) bool {
	switch key {
	case SortBySize:
		return func(i, j int) bool {
			if offers[i].Room.SizeSqFt != offers[j].Room.SizeSqFt {
				return offers[i].Room.SizeSqFt > offers[j].Room.SizeSqFt
			}
			return offers[i].Room.ID < offers[j].Room.ID
		}
	case SortByName:
		return func(i, j int) bool {
			a, b := strings.ToLower(offers[i].Room.Name), strings.ToLower(offers[j].Room.Name)
			if a != b {
				return a < b
			}
			return offers[i].Room.ID < offers[j].Room.ID
		}
	default:
		return func(i, j int) bool {
			if offers[i].Price.Total != offers[j].Price.Total {
				return offers[i].Price.Total < offers[j].Price.Total
			}
			return offers[i].Room.ID < offers[j].Room.ID
		}
	}
}
