package search_rooms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/pkg/ptr"
)

func offer(id int64, name string, size int, total int64) domain.RoomOffer {
	return domain.RoomOffer{
		Room:  domain.Room{ID: id, Name: name, SizeSqFt: size, IsAvailable: true, Capacity: 2},
		Price: domain.Price{Total: total},
	}
}

func ids(offers []domain.RoomOffer) []int64 {
	res := make([]int64, 0, len(offers))
	for _, o := range offers {
		res = append(res, o.Room.ID)
	}
	return res
}

func TestArrange_Sort(t *testing.T) {
	offers := []domain.RoomOffer{
		offer(1, "Garden Suite", 800, 900),
		offer(2, "classic room", 300, 300),
		offer(3, "Deluxe Twin", 450, 300),
	}

	tests := []struct {
		key      SortKey
		expected []int64
	}{
		{"", []int64{2, 3, 1}},
		{SortByPrice, []int64{2, 3, 1}},
		{SortBySize, []int64{1, 3, 2}},
		{SortByName, []int64{2, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			view := Arrange(offers, ViewOptions{Sort: tt.key})
			assert.Equal(t, tt.expected, ids(view.Offers))
			assert.Empty(t, view.Suggestion)
		})
	}

	// исходный порядок не меняется
	assert.Equal(t, []int64{1, 2, 3}, ids(offers))
}

func TestArrange_TypeFilter(t *testing.T) {
	offers := []domain.RoomOffer{
		offer(1, "Garden Suite", 800, 900),
		offer(2, "Classic Room", 300, 300),
	}

	view := Arrange(offers, ViewOptions{Type: ptr.Ptr(domain.RoomTypeSuite)})
	assert.Equal(t, []int64{1}, ids(view.Offers))
	assert.Equal(t, 2, view.Total)

	view = Arrange(offers, ViewOptions{Type: ptr.Ptr(domain.RoomTypeDeluxe)})
	assert.Empty(t, view.Offers)
	assert.Equal(t, SuggestionClearFilters, view.Suggestion)
}

func TestArrange_Empty(t *testing.T) {
	view := Arrange(nil, ViewOptions{})
	assert.Empty(t, view.Offers)
	assert.Equal(t, SortByPrice, view.Sort)
	assert.Equal(t, SuggestionChangeDates, view.Suggestion)
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortByPrice, key)

	key, err = ParseSortKey("size")
	require.NoError(t, err)
	assert.Equal(t, SortBySize, key)

	_, err = ParseSortKey("rating")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
