package mailer

import "errors"

var (
	// ErrInvalidRecipient возвращается при пустом или некорректном адресе получателя
	ErrInvalidRecipient = errors.New("mailer: invalid recipient")

	// ErrSendFailed возвращается, когда SMTP-сервер не принял письмо
	ErrSendFailed = errors.New("mailer: failed to send email")

	// ErrInvalidConfig возвращается при неизвестном режиме TLS
	ErrInvalidConfig = errors.New("mailer: invalid config")
)
