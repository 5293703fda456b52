package forms

import (
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// StayPatch изменение формы дат. nil-поля не меняются.
// GuestsDelta применяется после Guests и моделирует кнопки +/-
type StayPatch struct {
	CheckIn       *time.Time
	CheckOut      *time.Time
	ClearCheckIn  bool
	ClearCheckOut bool
	Guests        *int
	GuestsDelta   int
}

// StayForm форма первого шага. Значения хранятся как есть, валидируются на каждый запрос
type StayForm struct {
	checkIn  *time.Time
	checkOut *time.Time
	guests   int
}

// NewStayForm пустая форма с одним гостем
func NewStayForm() *StayForm {
	return &StayForm{guests: domain.MinGuests}
}

// NewStayFormFromQuery форма, заполненная значениями принятого запроса
func NewStayFormFromQuery(q domain.StayQuery) *StayForm {
	f := NewStayForm()
	f.Prefill(&q.CheckIn, &q.CheckOut, q.Guests)
	return f
}

// Prefill заполняет форму частичными значениями без автокоррекции (используется при разборе deep link)
func (f *StayForm) Prefill(checkIn, checkOut *time.Time, guests int) {
	f.checkIn = dateOrNil(checkIn)
	f.checkOut = dateOrNil(checkOut)
	f.guests = domain.ClampGuests(guests)
}

// Apply применяет изменение и возвращает true, если значения формы поменялись
func (f *StayForm) Apply(p StayPatch) bool {
	before := f.snapshot()

	if p.ClearCheckIn {
		f.checkIn = nil
	} else if p.CheckIn != nil {
		f.SetCheckIn(*p.CheckIn)
	}

	if p.ClearCheckOut {
		f.checkOut = nil
	} else if p.CheckOut != nil {
		f.SetCheckOut(*p.CheckOut)
	}

	if p.Guests != nil {
		f.SetGuests(*p.Guests)
	}
	if p.GuestsDelta != 0 {
		f.SetGuests(f.guests + p.GuestsDelta)
	}

	return before != f.snapshot()
}

// SetCheckIn задает дату заезда. Если текущая дата выезда совпадает с новой датой
// заезда или раньше нее, выезд сдвигается на следующий день после заезда
func (f *StayForm) SetCheckIn(t time.Time) {
	in := domain.DateOnly(t)
	f.checkIn = &in

	if f.checkOut != nil && !f.checkOut.After(in) {
		out := in.AddDate(0, 0, 1)
		f.checkOut = &out
	}
}

// SetCheckOut задает дату выезда без автокоррекции
func (f *StayForm) SetCheckOut(t time.Time) {
	out := domain.DateOnly(t)
	f.checkOut = &out
}

// SetGuests задает количество гостей, приводя его к диапазону [1, 8]
func (f *StayForm) SetGuests(n int) {
	f.guests = domain.ClampGuests(n)
}

func (f *StayForm) IncrementGuests() { f.SetGuests(f.guests + 1) }

func (f *StayForm) DecrementGuests() { f.SetGuests(f.guests - 1) }

func (f *StayForm) CheckIn() *time.Time { return copyTime(f.checkIn) }

func (f *StayForm) CheckOut() *time.Time { return copyTime(f.checkOut) }

func (f *StayForm) Guests() int { return f.guests }

// Errors ошибки для показа рядом с полями. Незаполненные даты не считаются ошибкой
// до попытки перейти дальше, но все равно блокируют переход (см. CanProceed)
func (f *StayForm) Errors(now time.Time) domain.FieldErrors {
	errs := domain.ValidateStay(f.checkIn, f.checkOut, f.guests, now)
	if f.checkIn == nil {
		delete(errs, domain.FieldCheckIn)
	}
	if f.checkOut == nil {
		delete(errs, domain.FieldCheckOut)
	}
	return errs
}

// CanProceed возвращает true, когда обе даты заданы и ошибок нет
func (f *StayForm) CanProceed(now time.Time) bool {
	return domain.ValidateStay(f.checkIn, f.checkOut, f.guests, now).Empty()
}

// Query строит запрос на проживание из текущих значений
func (f *StayForm) Query(now time.Time) (domain.StayQuery, error) {
	var in, out time.Time
	if f.checkIn != nil {
		in = *f.checkIn
	}
	if f.checkOut != nil {
		out = *f.checkOut
	}
	return domain.NewStayQuery(in, out, f.guests, now)
}

type staySnapshot struct {
	checkIn  time.Time
	checkOut time.Time
	guests   int
}

func (f *StayForm) snapshot() staySnapshot {
	s := staySnapshot{guests: f.guests}
	if f.checkIn != nil {
		s.checkIn = *f.checkIn
	}
	if f.checkOut != nil {
		s.checkOut = *f.checkOut
	}
	return s
}

func dateOrNil(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	d := domain.DateOnly(*t)
	return &d
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
