package send_results_email

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("send_results_email: booking not found")

	// ErrPermissionDenied возвращается, когда отправляет не фотограф бронирования и не администратор
	ErrPermissionDenied = errors.New("send_results_email: permission denied")

	// ErrNoResults возвращается, когда у бронирования нет результатов
	ErrNoResults = errors.New("send_results_email: no results to send")

	// ErrNoRecipient возвращается, когда email не указан
	ErrNoRecipient = errors.New("send_results_email: recipient email is not set")

	// ErrSendFailed возвращается, когда SMTP-сервер не принял письмо
	ErrSendFailed = errors.New("send_results_email: failed to send email")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("send_results_email: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_results_email: internal error")
)
