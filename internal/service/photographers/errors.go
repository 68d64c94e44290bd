package photographers

import "errors"

var (
	// ErrPhotographerNotFound возвращается, когда профиль фотографа не найден
	ErrPhotographerNotFound = errors.New("photographers: photographer not found")

	// ErrAccessDenied возвращается, когда у пользователя нет профиля фотографа
	ErrAccessDenied = errors.New("photographers: access denied")

	// ErrUnknownService возвращается, когда в профиле указана несуществующая услуга
	ErrUnknownService = errors.New("photographers: unknown service")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("photographers: internal error")
)
