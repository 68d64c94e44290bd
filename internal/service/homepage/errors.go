package homepage

import "errors"

var (
	// ErrAccessDenied возвращается, когда контент меняет не администратор
	ErrAccessDenied = errors.New("homepage: only admin can edit content")

	// ErrInvalidContent возвращается, когда заголовок или описание пустые
	ErrInvalidContent = errors.New("homepage: invalid content")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("homepage: internal error")
)
