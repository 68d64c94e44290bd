package notifications

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/mailer"
)

// Mailer интерфейс SMTP клиента
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// PhotographerRepository интерфейс репозитория фотографов
type PhotographerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Photographer, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Metrics счётчик отправленных писем
type Metrics interface {
	ObserveResultEmail(ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
