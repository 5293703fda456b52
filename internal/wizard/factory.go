package wizard

import (
	"context"
	"net/url"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Factory создает контроллеры мастера с общими зависимостями
type Factory struct {
	deps *deps
}

// NewFactory создает фабрику контроллеров
func NewFactory(
	searcher RoomSearcher,
	confirmer Confirmer,
	submitDelay Delay,
	metrics Metrics,
	logger Logger,
) *Factory {
	return &Factory{
		deps: &deps{
			searcher:    searcher,
			confirmer:   confirmer,
			submitDelay: submitDelay,
			metrics:     metrics,
			clock:       &RealTimeProvider{},
			logger:      logger,
		},
	}
}

// WithTimeProvider подменяет источник времени
func (f *Factory) WithTimeProvider(tp TimeProvider) *Factory {
	f.deps.clock = tp
	return f
}

// New пустой мастер на шаге Dates
func (f *Factory) New(id string) *Controller {
	return newController(id, f.deps)
}

// FromLink восстанавливает мастер по параметрам ссылки:
//   - валидные даты и номер, который может принять гостей: Details с рассчитанной ценой
//   - валидные даты: Rooms с результатом поиска
//   - иначе: Dates с частично заполненной формой
//
// Никогда не завершается ошибкой: недостижимый шаг означает переход к более слабому условию
func (f *Factory) FromLink(ctx context.Context, id string, params LinkParams) *Controller {
	c := newController(id, f.deps)
	c.stayForm.Prefill(params.CheckIn, params.CheckOut, params.Guests)

	if params.CheckIn == nil || params.CheckOut == nil {
		f.deps.logger.Info("Wizard: session=%s resumed at dates (partial link)", id)
		return c
	}

	query, err := domain.NewStayQuery(*params.CheckIn, *params.CheckOut, params.Guests, f.deps.clock.Now())
	if err != nil {
		f.deps.logger.Info("Wizard: session=%s resumed at dates: %v", id, err)
		return c
	}

	if params.RoomID != nil {
		if withRoom, ok := f.quote(ctx, id, query, *params.RoomID); ok {
			c.draft = withRoom
			c.moveTo(domain.StepDetails)
			return c
		}
	}

	resp, err := f.deps.searcher.Execute(ctx, query)
	if err != nil {
		f.deps.logger.Warn("Wizard: session=%s lookup failed, resumed at dates: %v", id, err)
		return c
	}

	c.draft = domain.NewDatesOnly(query)
	c.offers = resp.Offers
	c.moveTo(domain.StepRooms)

	return c
}

func (f *Factory) quote(ctx context.Context, id string, query domain.StayQuery, roomID int64) (domain.DatesAndRoom, bool) {
	offer, err := f.deps.searcher.Quote(ctx, query, roomID)
	if err != nil {
		f.deps.logger.Warn("Wizard: session=%s room id=%d from link not usable: %v", id, roomID, err)
		return domain.DatesAndRoom{}, false
	}

	withRoom, err := domain.NewDatesOnly(query).WithRoom(*offer)
	if err != nil {
		f.deps.logger.Warn("Wizard: session=%s room id=%d from link rejected: %v", id, roomID, err)
		return domain.DatesAndRoom{}, false
	}

	return withRoom, true
}

// Link параметры ссылки, восстанавливающей текущий шаг
func (c *Controller) Link() url.Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.link()
}

// link Confirm и Done восстанавливаются на шаге Details: анкета гостя в ссылку не попадает
func (c *Controller) link() url.Values {
	p := LinkParams{
		CheckIn:  c.stayForm.CheckIn(),
		CheckOut: c.stayForm.CheckOut(),
		Guests:   c.stayForm.Guests(),
	}

	if c.draft != nil {
		stay := c.draft.Stay()
		p.CheckIn = &stay.CheckIn
		p.CheckOut = &stay.CheckOut
		p.Guests = stay.Guests
	}

	var roomID int64
	switch d := c.draft.(type) {
	case domain.DatesAndRoom:
		roomID = d.Offer().Room.ID
	case domain.DatesRoomAndGuest:
		roomID = d.Offer().Room.ID
	case domain.ConfirmationRecord:
		roomID = d.Draft().Offer().Room.ID
	}
	if roomID > 0 {
		p.RoomID = &roomID
	}

	return p.Values()
}
