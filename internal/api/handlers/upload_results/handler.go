package upload_results

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/filestore"
	uploadResults "github.com/m04kA/SMC-StudioBooking/internal/usecase/upload_results"
)

const (
	msgInvalidBookingID = "Некоректний ID бронювання"
	msgInvalidForm      = "Некоректна multipart-форма"
	msgBookingNotFound  = "Бронювання не знайдено"
	msgPermissionDenied = "Завантажувати результати може тільки фотограф цього бронювання"
	msgInvalidStatus    = "Результати можна завантажувати тільки для підтверджених або зроблених замовлень"
	msgNoFiles          = "Потрібно завантажити хоча б один файл"
	msgNotImage         = "Файл %s не є зображенням"
	msgNotVideo         = "Файл %s не є відео"
	msgFileTooLarge     = "Файл %s завеликий"

	// multipartMemory часть формы, которая держится в памяти; остальное уходит во временные файлы
	multipartMemory = 32 << 20
)

type Handler struct {
	useCase      UploadResultsUseCase
	maxBodyBytes int64
	logger       Logger
}

// NewHandler maxBodyBytes ограничивает размер всего запроса
func NewHandler(useCase UploadResultsUseCase, maxBodyBytes int64, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

// Handle POST /api/v1/bookings/{id}/upload-results
// multipart/form-data: photos[], videos[]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/upload-results - Unauthorized access attempt")
		handlers.RespondUnauthorized(w)
		return
	}

	bookingID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/upload-results - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		h.logger.Warn("POST /bookings/{id}/upload-results - Invalid multipart form: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(actor, bookingID, r.MultipartForm))
	if err != nil {
		var fileErr *uploadResults.FileError
		switch {
		case errors.As(err, &fileErr):
			h.logger.Warn("POST /bookings/{id}/upload-results - File rejected: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, fileMessage(fileErr))

		case errors.Is(err, uploadResults.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/upload-results - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, uploadResults.ErrPermissionDenied):
			h.logger.Warn("POST /bookings/{id}/upload-results - Permission denied: booking_id=%d, user_id=%d", bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, uploadResults.ErrInvalidStatus):
			h.logger.Warn("POST /bookings/{id}/upload-results - Invalid status: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, uploadResults.ErrNoFiles), errors.Is(err, uploadResults.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/upload-results - No files: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNoFiles)

		default:
			h.logger.Error("POST /bookings/{id}/upload-results - Failed to upload results: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/upload-results - Results uploaded: booking_id=%d, photos=%d, videos=%d",
		bookingID, len(result.Booking.ResultPhotos), len(result.Booking.ResultVideos))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func fileMessage(fe *uploadResults.FileError) string {
	switch {
	case errors.Is(fe.Err, uploadResults.ErrFileTooLarge):
		return fmt.Sprintf(msgFileTooLarge, fe.Filename)
	case fe.Kind == filestore.KindVideo:
		return fmt.Sprintf(msgNotVideo, fe.Filename)
	default:
		return fmt.Sprintf(msgNotImage, fe.Filename)
	}
}
