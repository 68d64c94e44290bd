package portfolio

import (
	"context"
	"mime/multipart"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/filestore"
)

// PortfolioRepository интерфейс репозитория портфолио
type PortfolioRepository interface {
	Create(ctx context.Context, item *domain.PortfolioItem) (*domain.PortfolioItem, error)
	GetByID(ctx context.Context, id int64) (*domain.PortfolioItem, error)
	List(ctx context.Context, filter domain.PortfolioFilter) ([]*domain.PortfolioItem, error)
	Update(ctx context.Context, item *domain.PortfolioItem) error
	Delete(ctx context.Context, id int64) error
}

// CatalogRepository интерфейс каталога услуг
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
}

// FileStore интерфейс хранилища изображений
type FileStore interface {
	Save(kind filestore.Kind, fh *multipart.FileHeader) (string, error)
	Remove(url string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
