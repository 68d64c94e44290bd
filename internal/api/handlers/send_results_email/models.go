package send_results_email

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	sendResultsEmail "github.com/m04kA/SMC-StudioBooking/internal/usecase/send_results_email"
)

// SendResultsEmailRequest HTTP request model; тело может отсутствовать
type SendResultsEmailRequest struct {
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SendResultsEmailRequest) ToUseCaseRequest(actor domain.Actor, bookingID int64) *sendResultsEmail.Request {
	return &sendResultsEmail.Request{
		Actor:     actor,
		BookingID: bookingID,
		Email:     r.Email,
	}
}
