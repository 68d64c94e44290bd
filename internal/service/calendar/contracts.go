package calendar

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// PhotographerRepository интерфейс репозитория фотографов
type PhotographerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Photographer, error)
	UpdateCalendar(ctx context.Context, id int64, calendar domain.WorkCalendar) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
