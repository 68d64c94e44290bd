package get_available_dates

import "errors"

var (
	// ErrPhotographerNotFound возвращается, когда фотограф не найден
	ErrPhotographerNotFound = errors.New("get_available_dates: photographer not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_available_dates: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_dates: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_dates: internal error")
)
