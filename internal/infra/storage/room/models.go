package room

import (
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// roomRecord запись каталога в JSON-файле
type roomRecord struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	NightlyRate float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	BedType     string   `json:"bedType"`
	SizeSqFt    int      `json:"size"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	IsAvailable bool     `json:"isAvailable"`
}

func (r roomRecord) toDomain() domain.Room {
	return domain.Room{
		ID:          r.ID,
		Name:        r.Name,
		NightlyRate: r.NightlyRate,
		Capacity:    r.Capacity,
		BedType:     r.BedType,
		SizeSqFt:    r.SizeSqFt,
		Amenities:   domain.NormalizeAmenities(r.Amenities),
		Description: r.Description,
		Images:      append([]string(nil), r.Images...),
		IsAvailable: r.IsAvailable,
	}
}

// validateRoom проверяет запись каталога
func validateRoom(r domain.Room) error {
	if r.ID <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidRoom, r.ID)
	}
	if r.Name == "" {
		return fmt.Errorf("%w: room id=%d has empty name", ErrInvalidRoom, r.ID)
	}
	if r.NightlyRate <= 0 {
		return fmt.Errorf("%w: room id=%d has non-positive nightly rate", ErrInvalidRoom, r.ID)
	}
	if r.Capacity < domain.MinGuests {
		return fmt.Errorf("%w: room id=%d has capacity %d", ErrInvalidRoom, r.ID, r.Capacity)
	}
	return nil
}
