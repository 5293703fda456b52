package domain

import "strings"

// RoomType грубая классификация номера по названию
type RoomType string

const (
	RoomTypeSuite    RoomType = "suite"
	RoomTypeDeluxe   RoomType = "deluxe"
	RoomTypeStandard RoomType = "standard"
)

// RoomTypes список всех типов номеров в порядке отображения
var RoomTypes = []RoomType{
	RoomTypeSuite,
	RoomTypeDeluxe,
	RoomTypeStandard,
}

// Room номер из каталога отеля
type Room struct {
	ID          int64
	Name        string
	NightlyRate float64
	Capacity    int
	BedType     string
	SizeSqFt    int
	Amenities   []string
	Description string
	Images      []string
	IsAvailable bool
}

// CanHost возвращает true, если номер доступен и вмещает указанное число гостей
func (r *Room) CanHost(guests int) bool {
	return r.IsAvailable && r.Capacity >= guests
}

// Type определяет тип номера по вхождению подстроки в название
func (r *Room) Type() RoomType {
	name := strings.ToLower(r.Name)

	switch {
	case strings.Contains(name, "suite"):
		return RoomTypeSuite
	case strings.Contains(name, "deluxe"):
		return RoomTypeDeluxe
	default:
		return RoomTypeStandard
	}
}

// Clone возвращает копию номера, не разделяющую слайсы с оригиналом
func (r Room) Clone() Room {
	r.Amenities = append([]string(nil), r.Amenities...)
	r.Images = append([]string(nil), r.Images...)
	return r
}

// ParseRoomType конвертирует строку в RoomType
func ParseRoomType(s string) (RoomType, bool) {
	t := RoomType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range RoomTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// NormalizeAmenities убирает пустые значения и дубликаты, сохраняя порядок
func NormalizeAmenities(amenities []string) []string {
	seen := make(map[string]bool, len(amenities))
	res := make([]string, 0, len(amenities))

	for _, a := range amenities {
		a = strings.TrimSpace(a)
		if a == "" || seen[strings.ToLower(a)] {
			continue
		}
		seen[strings.ToLower(a)] = true
		res = append(res, a)
	}

	return res
}
