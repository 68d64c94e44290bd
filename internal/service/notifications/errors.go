package notifications

import "errors"

var (
	// ErrNoResults возвращается, когда у бронирования нет загруженных результатов
	ErrNoResults = errors.New("notifications: booking has no results to send")

	// ErrNoRecipient возвращается, когда email не передан и у бронирования нет гостевого email
	ErrNoRecipient = errors.New("notifications: recipient email is not set")

	// ErrSendFailed возвращается, когда письмо не удалось отправить
	ErrSendFailed = errors.New("notifications: failed to send results email")

	// ErrPendingEmails возвращается из Wait, если фоновые письма не успели уйти
	ErrPendingEmails = errors.New("notifications: results emails still pending")
)
