package portfolio

import "errors"

var (
	// ErrItemNotFound возвращается, когда работа портфолио не найдена
	ErrItemNotFound = errors.New("portfolio.repository: item not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("portfolio.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("portfolio.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("portfolio.repository: failed to scan row")
)
