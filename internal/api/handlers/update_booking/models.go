package update_booking

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings/models"
	updateBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model. Отсутствующие поля не меняются.
type UpdateBookingRequest struct {
	Status               *string  `json:"status,omitempty"`
	CancellationReason   *string  `json:"cancellation_reason,omitempty" validate:"omitempty,max=500"`
	ServiceID            *int64   `json:"service_id,omitempty" validate:"omitempty,gt=0"`
	AdditionalServiceIDs *[]int64 `json:"additional_service_ids,omitempty" validate:"omitempty,max=50,dive,gt=0"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Статус нормализуется здесь, дальше по слоям идёт только domain.BookingStatus.
func (r *UpdateBookingRequest) ToUseCaseRequest(actor domain.Actor, bookingID int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		Actor:                actor,
		BookingID:            bookingID,
		CancellationReason:   r.CancellationReason,
		ServiceID:            r.ServiceID,
		AdditionalServiceIDs: r.AdditionalServiceIDs,
	}

	if r.Status != nil {
		status, err := domain.ParseStatus(*r.Status)
		if err != nil {
			return nil, err
		}
		req.Status = &status
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
