package upload_results

import (
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if len(req.Photos)+len(req.Videos) == 0 {
		return ErrNoFiles
	}

	return nil
}

// checkAccess проверяет роль, владение и статус бронирования
func checkAccess(booking *domain.Booking, actor domain.Actor) error {
	if !actor.OwnsAsPhotographer(booking) {
		return ErrPermissionDenied
	}

	if !booking.AcceptsResults() {
		return fmt.Errorf("%w: status is %s", ErrInvalidStatus, booking.Status)
	}

	return nil
}
