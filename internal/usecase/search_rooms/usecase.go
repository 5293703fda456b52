package search_rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelBooking/internal/infra/storage/room"
)

// UseCase use case поиска доступных номеров
type UseCase struct {
	roomRepo RoomRepository
	delay    Delay
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	delay Delay,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo: roomRepo,
		delay:    delay,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute возвращает номера, которые могут принять запрос, с ценой, рассчитанной для этого запроса.
// Перед обращением к каталогу выдерживается имитация сетевой задержки
func (uc *UseCase) Execute(ctx context.Context, query domain.StayQuery) (*Response, error) {
	uc.logger.Info("SearchRooms: checkIn=%s, checkOut=%s, guests=%d",
		query.CheckIn.Format(domain.DateFormat), query.CheckOut.Format(domain.DateFormat), query.Guests)

	// 1. Валидация запроса
	if err := validateQuery(query); err != nil {
		uc.logger.Warn("SearchRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Имитация сетевой задержки
	if err := uc.delay.Wait(ctx); err != nil {
		uc.logger.Warn("SearchRooms: aborted: %v", err)
		return nil, fmt.Errorf("%w: Execute - wait: %v", ErrAborted, err)
	}

	// 3. Получаем каталог
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("SearchRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 4. Фильтруем по вместимости и доступности, считаем цену для текущего запроса
	offers := make([]domain.RoomOffer, 0, len(rooms))
	for _, room := range rooms {
		if !room.CanHost(query.Guests) {
			continue
		}

		offer, err := domain.NewRoomOffer(room, query)
		if err != nil {
			uc.logger.Error("SearchRooms: failed to price room id=%d: %v", room.ID, err)
			return nil, fmt.Errorf("%w: failed to price room: %v", ErrInternal, err)
		}
		offers = append(offers, offer)
	}

	view := Arrange(offers, ViewOptions{Sort: SortByPrice})
	uc.metrics.OffersReturned(len(view.Offers))

	uc.logger.Info("SearchRooms: found %d of %d rooms for guests=%d, nights=%d",
		len(view.Offers), len(rooms), query.Guests, query.Nights())

	return &Response{
		Query:  query,
		Offers: view.Offers,
	}, nil
}

// Quote рассчитывает предложение для конкретного номера без имитации задержки (переход по ссылке)
func (uc *UseCase) Quote(ctx context.Context, query domain.StayQuery, roomID int64) (*domain.RoomOffer, error) {
	uc.logger.Info("QuoteRoom: room=%d, checkIn=%s, checkOut=%s, guests=%d",
		roomID, query.CheckIn.Format(domain.DateFormat), query.CheckOut.Format(domain.DateFormat), query.Guests)

	if err := validateQuery(query); err != nil {
		uc.logger.Warn("QuoteRoom: validation failed: %v", err)
		return nil, err
	}

	room, err := uc.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("QuoteRoom: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("QuoteRoom: failed to get room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	offer, err := domain.NewRoomOffer(*room, query)
	if err != nil {
		uc.logger.Warn("QuoteRoom: room id=%d cannot host guests=%d", roomID, query.Guests)
		return nil, fmt.Errorf("%w: %v", ErrRoomCannotHost, err)
	}

	return &offer, nil
}
