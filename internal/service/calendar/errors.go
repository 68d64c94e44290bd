package calendar

import "errors"

var (
	// ErrPhotographerNotFound возвращается, когда профиль фотографа не найден
	ErrPhotographerNotFound = errors.New("calendar: photographer not found")

	// ErrAccessDenied возвращается, когда календарь меняет не фотограф
	ErrAccessDenied = errors.New("calendar: access denied")

	// ErrInvalidCalendar возвращается при противоречивом календаре
	ErrInvalidCalendar = errors.New("calendar: invalid work calendar")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar: internal error")
)
