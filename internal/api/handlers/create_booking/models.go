package create_booking

import (
	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// CreateBookingRequest HTTP request model.
// Поля guest_* учитываются только для анонимного запроса.
type CreateBookingRequest struct {
	PhotographerID       int64   `json:"photographer_id" validate:"required,gt=0"`
	ServiceID            int64   `json:"service_id" validate:"required,gt=0"`
	Date                 string  `json:"date" validate:"required"`       // "2025-10-15"
	StartTime            string  `json:"start_time" validate:"required"` // "10:00"
	GuestFirstName       string  `json:"guest_first_name,omitempty" validate:"max=100"`
	GuestLastName        string  `json:"guest_last_name,omitempty" validate:"max=100"`
	GuestEmail           string  `json:"guest_email,omitempty" validate:"omitempty,email"`
	AdditionalServiceIDs []int64 `json:"additional_service_ids,omitempty" validate:"max=50,dive,gt=0"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor *domain.Actor) (*createBooking.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	req := &createBooking.Request{
		Actor:                actor,
		PhotographerID:       r.PhotographerID,
		ServiceID:            r.ServiceID,
		Date:                 date,
		StartTime:            startTime,
		AdditionalServiceIDs: r.AdditionalServiceIDs,
	}
	if actor == nil {
		req.Guest = &domain.GuestContact{
			FirstName: r.GuestFirstName,
			LastName:  r.GuestLastName,
			Email:     r.GuestEmail,
		}
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
