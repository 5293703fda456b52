package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
	"github.com/m04kA/SMC-HotelBooking/internal/forms"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/confirm_booking"
	"github.com/m04kA/SMC-HotelBooking/internal/usecase/search_rooms"
)

// Операции мастера (для логов и метрик)
const (
	OpEditStay    = "edit_stay"
	OpSubmitDates = "submit_dates"
	OpSelectRoom  = "select_room"
	OpEditGuest   = "edit_guest"
	OpSubmitGuest = "submit_guest"
	OpConfirm     = "confirm"
	OpBack        = "back"
)

// Controller линейный мастер бронирования: Dates -> Rooms -> Details -> Confirm -> Done.
//
// Все изменения выполняются под мьютексом. На время имитации задержки мьютекс
// отпускается, а флаг busy отклоняет любые изменяющие операции, поэтому
// результат асинхронного шага применяется к тому же состоянию, из которого он начался
type Controller struct {
	mu sync.Mutex

	id   string
	deps *deps

	step  domain.Step
	draft domain.BookingDraft
	busy  bool

	stayForm  *forms.StayForm
	guestForm *forms.GuestForm

	// offers результат последнего поиска для draft.Stay(); nil, если поиск не выполнялся
	offers []domain.RoomOffer
}

type deps struct {
	searcher    RoomSearcher
	confirmer   Confirmer
	submitDelay Delay
	metrics     Metrics
	clock       TimeProvider
	logger      Logger
}

func newController(id string, d *deps) *Controller {
	return &Controller{
		id:        id,
		deps:      d,
		step:      domain.StepDates,
		stayForm:  forms.NewStayForm(),
		guestForm: forms.NewGuestForm(),
	}
}

// ID идентификатор сессии мастера
func (c *Controller) ID() string {
	return c.id
}

// Step текущий шаг
func (c *Controller) Step() domain.Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Busy возвращает true, пока выполняется асинхронная операция
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// EditStay изменяет форму дат (живая валидация). Доступно только на шаге Dates
func (c *Controller) EditStay(patch forms.StayPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guard(OpEditStay, domain.StepDates); err != nil {
		return err
	}

	c.stayForm.Apply(patch)
	return nil
}

// SubmitDates Dates -> Rooms. Требует валидной формы дат, выполняет поиск номеров.
// Любой ранее выбранный номер отбрасывается: предложения строятся заново для нового запроса
func (c *Controller) SubmitDates(ctx context.Context) error {
	c.mu.Lock()

	if err := c.guard(OpSubmitDates, domain.StepDates); err != nil {
		c.mu.Unlock()
		return err
	}

	query, err := c.stayForm.Query(c.deps.clock.Now())
	if err != nil {
		c.mu.Unlock()
		return c.reject(OpSubmitDates, fmt.Errorf("%w: %w", ErrInvalidStay, err))
	}

	c.busy = true
	c.mu.Unlock()

	resp, err := c.deps.searcher.Execute(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	if err != nil {
		return c.reject(OpSubmitDates, mapSearchError(err))
	}

	c.draft = domain.NewDatesOnly(query)
	c.offers = resp.Offers
	c.moveTo(domain.StepRooms)

	c.deps.logger.Info("Wizard: session=%s found %d offers for checkIn=%s, nights=%d, guests=%d",
		c.id, len(c.offers), query.CheckIn.Format(domain.DateFormat), query.Nights(), query.Guests)

	return nil
}

// SelectRoom Rooms -> Details. Номер должен быть в текущем результате поиска
func (c *Controller) SelectRoom(roomID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guard(OpSelectRoom, domain.StepRooms); err != nil {
		return err
	}

	dates, ok := c.draft.(domain.DatesOnly)
	if !ok {
		return c.reject(OpSelectRoom, fmt.Errorf("%w: unexpected draft %T at step rooms", ErrInternal, c.draft))
	}

	var selected *domain.RoomOffer
	for i := range c.offers {
		if c.offers[i].Room.ID == roomID {
			selected = &c.offers[i]
			break
		}
	}
	if selected == nil {
		return c.reject(OpSelectRoom, fmt.Errorf("%w: room id=%d", ErrRoomNotOffered, roomID))
	}

	withRoom, err := dates.WithRoom(*selected)
	if err != nil {
		return c.reject(OpSelectRoom, fmt.Errorf("%w: %v", ErrRoomNotOffered, err))
	}

	c.draft = withRoom
	c.moveTo(domain.StepDetails)

	return nil
}

// EditGuest изменяет анкету гостя (живая валидация). Доступно только на шаге Details
func (c *Controller) EditGuest(patch forms.GuestPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guard(OpEditGuest, domain.StepDetails); err != nil {
		return err
	}

	c.guestForm.Apply(patch)
	return nil
}

// SubmitGuest Details -> Confirm. Требует полностью валидной анкеты, имитирует отправку
func (c *Controller) SubmitGuest(ctx context.Context) error {
	c.mu.Lock()

	if err := c.guard(OpSubmitGuest, domain.StepDetails); err != nil {
		c.mu.Unlock()
		return err
	}

	withRoom, ok := c.draft.(domain.DatesAndRoom)
	if !ok {
		c.mu.Unlock()
		return c.reject(OpSubmitGuest, fmt.Errorf("%w: unexpected draft %T at step details", ErrInternal, c.draft))
	}

	if !c.guestForm.CanSubmit() {
		c.guestForm.TouchAll()
		_, err := withRoom.WithGuest(c.guestForm.Profile())
		c.mu.Unlock()
		return c.reject(OpSubmitGuest, guestError(err))
	}

	c.busy = true
	c.mu.Unlock()

	waitErr := c.deps.submitDelay.Wait(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	if waitErr != nil {
		return c.reject(OpSubmitGuest, fmt.Errorf("%w: %v", ErrSimulationAborted, waitErr))
	}

	complete, err := withRoom.WithGuest(c.guestForm.Profile())
	if err != nil {
		return c.reject(OpSubmitGuest, guestError(err))
	}

	c.draft = complete
	c.moveTo(domain.StepConfirm)

	return nil
}

// Confirm выпускает подтверждение. После успеха мастер терминален
func (c *Controller) Confirm(ctx context.Context) (*domain.ConfirmationRecord, error) {
	c.mu.Lock()

	if err := c.guard(OpConfirm, domain.StepConfirm); err != nil {
		c.mu.Unlock()
		return nil, err
	}

	complete, ok := c.draft.(domain.DatesRoomAndGuest)
	if !ok {
		c.mu.Unlock()
		return nil, c.reject(OpConfirm, fmt.Errorf("%w: unexpected draft %T at step confirm", ErrInternal, c.draft))
	}

	c.busy = true
	c.mu.Unlock()

	rec, err := c.deps.confirmer.Execute(ctx, &confirm_booking.Request{SessionID: c.id, Draft: complete})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	if err != nil {
		if errors.Is(err, confirm_booking.ErrAborted) {
			return nil, c.reject(OpConfirm, fmt.Errorf("%w: %v", ErrSimulationAborted, err))
		}
		return nil, c.reject(OpConfirm, fmt.Errorf("%w: %v", ErrInternal, err))
	}

	c.draft = *rec
	c.offers = nil
	c.moveTo(domain.StepDone)

	out := *rec
	return &out, nil
}

// Back возвращает мастер на предыдущий шаг.
// Rooms -> Dates: выбор номера и предложения отбрасываются, форма дат сохраняет значения.
// Details -> Rooms: выбор номера отбрасывается; если поиск не выполнялся (переход по ссылке), он выполняется.
// Confirm -> Details: анкета остается в форме для редактирования
func (c *Controller) Back(ctx context.Context) error {
	c.mu.Lock()

	if c.busy {
		c.mu.Unlock()
		return c.reject(OpBack, ErrBusy)
	}

	switch c.step {
	case domain.StepDone:
		c.mu.Unlock()
		return c.reject(OpBack, ErrConfirmed)

	case domain.StepDates:
		c.mu.Unlock()
		return c.reject(OpBack, ErrNoPreviousStep)

	case domain.StepRooms:
		defer c.mu.Unlock()
		c.draft = nil
		c.offers = nil
		c.moveTo(domain.StepDates)
		return nil

	case domain.StepConfirm:
		defer c.mu.Unlock()
		complete, ok := c.draft.(domain.DatesRoomAndGuest)
		if !ok {
			return c.reject(OpBack, fmt.Errorf("%w: unexpected draft %T at step confirm", ErrInternal, c.draft))
		}
		c.draft = complete.Room()
		c.guestForm = forms.NewGuestFormFromProfile(complete.Guest())
		c.moveTo(domain.StepDetails)
		return nil
	}

	// StepDetails
	withRoom, ok := c.draft.(domain.DatesAndRoom)
	if !ok {
		c.mu.Unlock()
		return c.reject(OpBack, fmt.Errorf("%w: unexpected draft %T at step details", ErrInternal, c.draft))
	}

	if c.offers != nil {
		defer c.mu.Unlock()
		c.draft = withRoom.Dates()
		c.moveTo(domain.StepRooms)
		return nil
	}

	c.busy = true
	c.mu.Unlock()

	resp, err := c.deps.searcher.Execute(ctx, withRoom.Stay())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	if err != nil {
		return c.reject(OpBack, mapSearchError(err))
	}

	c.offers = resp.Offers
	c.draft = withRoom.Dates()
	c.moveTo(domain.StepRooms)

	return nil
}

// Snapshot возвращает копию состояния. Доступно и во время выполнения асинхронной операции
func (c *Controller) Snapshot(opts search_rooms.ViewOptions) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.deps.clock.Now()

	s := Snapshot{
		SessionID: c.id,
		Step:      c.step,
		Busy:      c.busy,
		Link:      c.link(),
	}

	_, hasPrevious := c.step.Previous()
	s.CanGoBack = hasPrevious && !c.busy

	s.Stay = StayState{
		CheckIn:  c.stayForm.CheckIn(),
		CheckOut: c.stayForm.CheckOut(),
		Guests:   c.stayForm.Guests(),
		Errors:   c.stayForm.Errors(now),
	}
	if c.draft != nil {
		stay := c.draft.Stay()
		s.Stay.CheckIn = &stay.CheckIn
		s.Stay.CheckOut = &stay.CheckOut
		s.Stay.Guests = stay.Guests
		s.Stay.Nights = stay.Nights()
		s.Stay.Errors = domain.FieldErrors{}
	} else if s.Stay.CheckIn != nil && s.Stay.CheckOut != nil {
		s.Stay.Nights = domain.NightsBetween(*s.Stay.CheckIn, *s.Stay.CheckOut)
	}

	switch d := c.draft.(type) {
	case domain.DatesOnly:
		view := search_rooms.Arrange(c.offers, opts)
		s.Offers = &view
		s.CanAdvance = len(view.Offers) > 0

	case domain.DatesAndRoom:
		offer := d.Offer()
		s.Selected = &offer
		s.TotalPrice = d.TotalPrice()
		s.Guest = &GuestState{Profile: c.guestForm.Profile(), Errors: c.guestForm.Errors()}
		s.CanAdvance = c.guestForm.CanSubmit()

	case domain.DatesRoomAndGuest:
		offer := d.Offer()
		s.Selected = &offer
		s.TotalPrice = d.TotalPrice()
		s.Guest = &GuestState{Profile: d.Guest(), Errors: domain.FieldErrors{}}
		s.CanAdvance = true

	case domain.ConfirmationRecord:
		offer := d.Draft().Offer()
		s.Selected = &offer
		s.TotalPrice = d.TotalPrice()
		rec := d
		s.Confirmation = &rec

	default:
		s.CanAdvance = c.stayForm.CanProceed(now)
	}

	if c.busy {
		s.CanAdvance = false
	}

	return s
}

// guard проверяет, что операция op допустима: мастер не занят, не завершен и находится на шаге want
func (c *Controller) guard(op string, want domain.Step) error {
	switch {
	case c.busy:
		return c.reject(op, ErrBusy)
	case c.step == domain.StepDone:
		return c.reject(op, ErrConfirmed)
	case c.step != want:
		return c.reject(op, fmt.Errorf("%w: %s requires step %s, current step is %s", ErrWrongStep, op, want, c.step))
	}
	return nil
}

func (c *Controller) moveTo(step domain.Step) {
	from := c.step
	c.step = step
	c.deps.metrics.WizardTransition(from.String(), step.String())
	c.deps.logger.Info("Wizard: session=%s %s -> %s", c.id, from, step)
}

// reject логирует и учитывает отклоненную операцию, возвращая err без изменений
func (c *Controller) reject(op string, err error) error {
	reason := rejectionReason(err)
	c.deps.metrics.WizardRejection(op, reason)

	if reason == "internal" {
		c.deps.logger.Error("Wizard: session=%s %s failed: %v", c.id, op, err)
	} else {
		c.deps.logger.Warn("Wizard: session=%s %s rejected: %v", c.id, op, err)
	}

	return err
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrBusy):
		return "busy"
	case errors.Is(err, ErrWrongStep):
		return "wrong_step"
	case errors.Is(err, ErrConfirmed):
		return "confirmed"
	case errors.Is(err, ErrNoPreviousStep):
		return "no_previous_step"
	case errors.Is(err, ErrInvalidStay), errors.Is(err, ErrInvalidGuest):
		return "invalid"
	case errors.Is(err, ErrRoomNotOffered):
		return "not_offered"
	case errors.Is(err, ErrSimulationAborted):
		return "aborted"
	default:
		return "internal"
	}
}

func mapSearchError(err error) error {
	switch {
	case errors.Is(err, search_rooms.ErrAborted):
		return fmt.Errorf("%w: %v", ErrSimulationAborted, err)
	case errors.Is(err, search_rooms.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidStay, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// guestError сохраняет в цепочке FieldErrors и ErrTermsNotAccepted
func guestError(err error) error {
	if err == nil {
		return fmt.Errorf("%w: guest profile rejected", ErrInvalidGuest)
	}
	return fmt.Errorf("%w: %w", ErrInvalidGuest, err)
}
