package domain

import "errors"

var (
	// ErrInvalidTransition переход между статусами отсутствует в таблице переходов
	ErrInvalidTransition = errors.New("domain: invalid status transition")

	// ErrPermissionDenied актор не имеет права на действие с бронированием
	ErrPermissionDenied = errors.New("domain: permission denied")

	// ErrResultsRequired завершение без загруженных результатов
	ErrResultsRequired = errors.New("domain: at least one result artifact is required")

	// ErrNotEditable клиент не может редактировать бронирование в текущем статусе
	ErrNotEditable = errors.New("domain: booking is not editable in its current status")

	// ErrUnknownStatus строка не соответствует ни одному статусу
	ErrUnknownStatus = errors.New("domain: unknown booking status")

	// ErrUnknownRole строка не соответствует ни одной роли
	ErrUnknownRole = errors.New("domain: unknown role")

	// ErrInvalidCalendar рабочий календарь противоречив
	ErrInvalidCalendar = errors.New("domain: invalid work calendar")
)
