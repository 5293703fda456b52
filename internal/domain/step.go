package domain

// Step шаг мастера бронирования
type Step int

const (
	StepDates Step = iota
	StepRooms
	StepDetails
	StepConfirm
	// StepDone терминальное состояние: подтверждение выпущено
	StepDone
)

var stepNames = map[Step]string{
	StepDates:   "dates",
	StepRooms:   "rooms",
	StepDetails: "details",
	StepConfirm: "confirm",
	StepDone:    "done",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// Previous возвращает предыдущий шаг. Для первого и терминального шага ok = false
func (s Step) Previous() (Step, bool) {
	switch s {
	case StepRooms, StepDetails, StepConfirm:
		return s - 1, true
	default:
		return s, false
	}
}
