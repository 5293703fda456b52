package wizard

import "errors"

var (
	// ErrBusy возвращается, пока выполняется асинхронная операция (поиск, отправка, подтверждение)
	ErrBusy = errors.New("wizard: operation in progress")

	// ErrWrongStep возвращается, когда операция недоступна на текущем шаге
	ErrWrongStep = errors.New("wizard: operation not allowed at current step")

	// ErrInvalidStay возвращается, когда форма дат не проходит валидацию
	ErrInvalidStay = errors.New("wizard: stay details are invalid")

	// ErrRoomNotOffered возвращается, когда выбранного номера нет в текущем результате поиска
	ErrRoomNotOffered = errors.New("wizard: room is not offered for the current stay")

	// ErrInvalidGuest возвращается, когда анкета гостя не проходит валидацию
	ErrInvalidGuest = errors.New("wizard: guest details are invalid")

	// ErrConfirmed возвращается при попытке изменить мастер после выпуска подтверждения
	ErrConfirmed = errors.New("wizard: booking is already confirmed")

	// ErrNoPreviousStep возвращается при попытке вернуться с первого шага
	ErrNoPreviousStep = errors.New("wizard: no previous step")

	// ErrSimulationAborted возвращается, если имитация задержки прервана; шаг не меняется
	ErrSimulationAborted = errors.New("wizard: operation aborted")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("wizard: internal error")
)
