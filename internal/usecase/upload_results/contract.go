package upload_results

import (
	"context"
	"mime/multipart"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/filestore"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	AppendResults(ctx context.Context, id int64, photos, videos []string) error
}

// FileStore интерфейс хранилища файлов результатов
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
