package update_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.Status == nil && !hasEdits(req) {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.AdditionalServiceIDs != nil && len(*req.AdditionalServiceIDs) > domain.MaxAdditionalServices {
		return fmt.Errorf("%w: too many additional services", ErrInvalidInput)
	}

	if req.CancellationReason != nil {
		reason := strings.TrimSpace(*req.CancellationReason)
		if utf8.RuneCountInString(reason) > domain.MaxCancellationReasonLength {
			return fmt.Errorf("%w: cancellation reason is longer than %d characters",
				ErrInvalidInput, domain.MaxCancellationReasonLength)
		}
		if reason == "" {
			req.CancellationReason = nil
		} else {
			req.CancellationReason = &reason
		}
	}

	return nil
}

// hasEdits true, если запрос меняет что-то кроме статуса
func hasEdits(req *Request) bool {
	return req.ServiceID != nil || req.AdditionalServiceIDs != nil
}
