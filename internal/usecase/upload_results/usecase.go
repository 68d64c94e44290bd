package upload_results

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/filestore"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
)

// UseCase use case для загрузки результатов фотосессии
type UseCase struct {
	bookingRepo BookingRepository
	fileStore   FileStore
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	fileStore FileStore,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		fileStore:   fileStore,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case загрузки результатов.
// Файлы сохраняются до транзакции; если запись в БД не удалась, сохранённые файлы удаляются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UploadResults: booking=%d, user=%d, photos=%d, videos=%d",
		req.BookingID, req.Actor.UserID, len(req.Photos), len(req.Videos))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UploadResults: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем бронирование до записи файлов на диск
	booking, err := uc.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if err := checkAccess(booking, req.Actor); err != nil {
		uc.logger.Warn("UploadResults: booking id=%d rejected for user=%d: %v", booking.ID, req.Actor.UserID, err)
		return nil, err
	}

	// 3. Сохраняем файлы
	var saved []string
	photos, err := uc.saveAll(filestore.KindPhoto, req.Photos, &saved)
	if err != nil {
		uc.cleanup(saved)
		return nil, err
	}
	videos, err := uc.saveAll(filestore.KindVideo, req.Videos, &saved)
	if err != nil {
		uc.cleanup(saved)
		return nil, err
	}

	// 4. Дописываем ссылки в бронирование, повторно проверив статус под блокировкой
	var result *domain.Booking
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		locked, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}
		if err := checkAccess(locked, req.Actor); err != nil {
			uc.logger.Warn("UploadResults: booking id=%d changed concurrently: %v", locked.ID, err)
			return err
		}

		if err := uc.bookingRepo.AppendResults(txCtx, locked.ID, photos, videos); err != nil {
			uc.logger.Error("UploadResults: failed to append results to booking id=%d: %v", locked.ID, err)
			return fmt.Errorf("%w: failed to append results: %v", ErrInternal, err)
		}

		updated, err := uc.getBooking(txCtx, locked.ID)
		if err != nil {
			return err
		}
		result = updated
		return nil
	})
	if err != nil {
		uc.cleanup(saved)
		return nil, err
	}

	uc.logger.Info("UploadResults: booking id=%d now has %d photos and %d videos",
		result.ID, len(result.ResultPhotos), len(result.ResultVideos))

	return &Response{Booking: result}, nil
}

func (uc *UseCase) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UploadResults: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UploadResults: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// saveAll сохраняет файлы одного вида; ссылки сохранённых файлов добавляются в saved
func (uc *UseCase) saveAll(kind filestore.Kind, files []*multipart.FileHeader, saved *[]string) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := uc.fileStore.Save(kind, fh)
		if err != nil {
			switch {
			case errors.Is(err, filestore.ErrInvalidContentType), errors.Is(err, filestore.ErrEmptyFile):
				uc.logger.Warn("UploadResults: file %s rejected: %v", fh.Filename, err)
				return nil, &FileError{Filename: fh.Filename, Kind: kind, Err: ErrInvalidFile}
			case errors.Is(err, filestore.ErrFileTooLarge):
				uc.logger.Warn("UploadResults: file %s too large: %v", fh.Filename, err)
				return nil, &FileError{Filename: fh.Filename, Kind: kind, Err: ErrFileTooLarge}
			default:
				uc.logger.Error("UploadResults: failed to store file %s: %v", fh.Filename, err)
				return nil, fmt.Errorf("%w: failed to store file: %v", ErrInternal, err)
			}
		}
		urls = append(urls, url)
		*saved = append(*saved, url)
	}
	return urls, nil
}

func (uc *UseCase) cleanup(urls []string) {
	for _, url := range urls {
		if err := uc.fileStore.Remove(url); err != nil {
			uc.logger.Warn("UploadResults: failed to remove orphan file %s: %v", url, err)
		}
	}
}
