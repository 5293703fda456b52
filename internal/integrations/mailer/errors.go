package mailer

import "errors"

var (
	// ErrBuildMessage возвращается при ошибке формирования письма
	ErrBuildMessage = errors.New("mailer: failed to build message")

	// ErrSend возвращается при ошибке отправки письма
	ErrSend = errors.New("mailer: failed to send message")
)
