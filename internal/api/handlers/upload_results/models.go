package upload_results

import (
	"mime/multipart"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings/models"
	uploadResults "github.com/m04kA/SMC-StudioBooking/internal/usecase/upload_results"
)

// Имена полей формы; клиенты присылают как "photos", так и "photos[]"
var (
	photoFields = []string{"photos", "photos[]"}
	videoFields = []string{"videos", "videos[]"}
)

// ToUseCaseRequest собирает файлы из multipart формы
func ToUseCaseRequest(actor domain.Actor, bookingID int64, form *multipart.Form) *uploadResults.Request {
	return &uploadResults.Request{
		Actor:     actor,
		BookingID: bookingID,
		Photos:    collect(form, photoFields),
		Videos:    collect(form, videoFields),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *uploadResults.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}

func collect(form *multipart.Form, fields []string) []*multipart.FileHeader {
	var files []*multipart.FileHeader
	for _, f := range fields {
		files = append(files, form.File[f]...)
	}
	return files
}
