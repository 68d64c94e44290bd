package homepage

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// ContentRepository интерфейс репозитория контента главной страницы
type ContentRepository interface {
	Get(ctx context.Context) (*domain.HomePageContent, error)
	Save(ctx context.Context, c *domain.HomePageContent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
