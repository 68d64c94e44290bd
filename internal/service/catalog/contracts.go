package catalog

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]*domain.Service, error)
	ListAdditionalServices(ctx context.Context) ([]*domain.AdditionalService, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
