package confirmation

import "errors"

var (
	// ErrConfirmationNotFound возвращается, когда подтверждение с таким номером не найдено
	ErrConfirmationNotFound = errors.New("confirmation.repository: confirmation not found")

	// ErrDuplicateNumber возвращается при попытке сохранить подтверждение с уже занятым номером
	ErrDuplicateNumber = errors.New("confirmation.repository: duplicate confirmation number")

	// ErrEncodeDraft возвращается при ошибке сериализации черновика
	ErrEncodeDraft = errors.New("confirmation.repository: failed to encode draft")

	// ErrDecodeDraft возвращается при ошибке восстановления черновика
	ErrDecodeDraft = errors.New("confirmation.repository: failed to decode draft")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("confirmation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("confirmation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("confirmation.repository: failed to scan row")
)
