package portfolio

import "errors"

var (
	// ErrItemNotFound возвращается, когда работа не найдена
	ErrItemNotFound = errors.New("portfolio: item not found")

	// ErrAccessDenied возвращается, когда у пользователя нет профиля фотографа
	ErrAccessDenied = errors.New("portfolio: only photographers have a portfolio")

	// ErrPermissionDenied возвращается, когда работу меняет не её автор и не администратор
	ErrPermissionDenied = errors.New("portfolio: permission denied")

	// ErrUnknownService возвращается, когда услуга не найдена в каталоге
	ErrUnknownService = errors.New("portfolio: unknown service")

	// ErrImageRequired возвращается, когда новая работа создаётся без изображения
	ErrImageRequired = errors.New("portfolio: image is required")

	// ErrInvalidImage возвращается, когда файл не является допустимым изображением
	ErrInvalidImage = errors.New("portfolio: invalid image")

	// ErrImageTooLarge возвращается, когда изображение превышает допустимый размер
	ErrImageTooLarge = errors.New("portfolio: image is too large")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("portfolio: internal error")
)
