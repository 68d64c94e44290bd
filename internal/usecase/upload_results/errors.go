package upload_results

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/infra/filestore"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("upload_results: booking not found")

	// ErrPermissionDenied возвращается, когда загружает не фотограф бронирования
	ErrPermissionDenied = errors.New("upload_results: only the booking photographer can upload results")

	// ErrInvalidStatus возвращается, когда бронирование не подтверждено и не сделано
	ErrInvalidStatus = errors.New("upload_results: results can be uploaded only for confirmed or done bookings")

	// ErrNoFiles возвращается, когда не передано ни одного файла
	ErrNoFiles = errors.New("upload_results: at least one file is required")

	// ErrInvalidFile возвращается, когда файл не является изображением или видео
	ErrInvalidFile = errors.New("upload_results: invalid file")

	// ErrFileTooLarge возвращается, когда файл превышает допустимый размер
	ErrFileTooLarge = errors.New("upload_results: file is too large")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("upload_results: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("upload_results: internal error")
)

// FileError ошибка конкретного файла; по ней обработчик называет файл в ответе
type FileError struct {
	Filename string
	Kind     filestore.Kind
	Err      error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%v: %s (%s)", e.Err, e.Filename, e.Kind)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
