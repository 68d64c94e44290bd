package photographers

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// PhotographerRepository интерфейс репозитория фотографов
type PhotographerRepository interface {
	List(ctx context.Context) ([]domain.PhotographerProfile, error)
	GetProfile(ctx context.Context, id int64) (*domain.PhotographerProfile, error)
	UpdateProfile(ctx context.Context, id int64, upd domain.PhotographerUpdate) error
}

// CatalogRepository интерфейс каталога услуг
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
