package wizard

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Параметры ссылки на мастер
const (
	ParamCheckIn  = "checkIn"
	ParamCheckOut = "checkOut"
	ParamGuests   = "guests"
	ParamRoomID   = "roomId"
)

// LinkParams разобранные параметры ссылки. Некорректные значения считаются отсутствующими
type LinkParams struct {
	CheckIn  *time.Time
	CheckOut *time.Time
	Guests   int
	RoomID   *int64
}

// ParseLink разбирает параметры ссылки. Никогда не возвращает ошибку:
// нераспознанная дата или номер становятся nil, некорректное число гостей становится 1
func ParseLink(values url.Values) LinkParams {
	p := LinkParams{
		CheckIn:  parseDate(values.Get(ParamCheckIn)),
		CheckOut: parseDate(values.Get(ParamCheckOut)),
		Guests:   domain.MinGuests,
	}

	if g, err := strconv.Atoi(strings.TrimSpace(values.Get(ParamGuests))); err == nil &&
		g >= domain.MinGuests && g <= domain.MaxGuests {
		p.Guests = g
	}

	if id, err := strconv.ParseInt(strings.TrimSpace(values.Get(ParamRoomID)), 10, 64); err == nil && id > 0 {
		p.RoomID = &id
	}

	return p
}

// IsEmpty возвращает true, если ссылка не несет никаких значений
func (p LinkParams) IsEmpty() bool {
	return p.CheckIn == nil && p.CheckOut == nil && p.RoomID == nil && p.Guests == domain.MinGuests
}

// Values кодирует параметры обратно в строку запроса
func (p LinkParams) Values() url.Values {
	v := url.Values{}
	if p.CheckIn != nil {
		v.Set(ParamCheckIn, p.CheckIn.Format(domain.DateFormat))
	}
	if p.CheckOut != nil {
		v.Set(ParamCheckOut, p.CheckOut.Format(domain.DateFormat))
	}
	v.Set(ParamGuests, strconv.Itoa(domain.ClampGuests(p.Guests)))
	if p.RoomID != nil {
		v.Set(ParamRoomID, strconv.FormatInt(*p.RoomID, 10))
	}
	return v
}

var dateLayouts = []string{
	domain.DateFormat,
	time.RFC3339,
	time.RFC3339Nano,
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := domain.DateOnly(t)
			return &d
		}
	}

	return nil
}
