package upload_results

import (
	"mime/multipart"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// Request модель запроса на загрузку результатов фотосессии
type Request struct {
	Actor     domain.Actor
	BookingID int64
	Photos    []*multipart.FileHeader
	Videos    []*multipart.FileHeader
}

// Response модель ответа с бронированием после загрузки
type Response struct {
	Booking *domain.Booking
}
