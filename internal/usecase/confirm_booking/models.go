package confirm_booking

import "github.com/m04kA/SMC-HotelBooking/internal/domain"

// Request модель запроса на подтверждение бронирования
type Request struct {
	SessionID string // ID сессии мастера (для логирования)
	Draft     domain.DatesRoomAndGuest
}
