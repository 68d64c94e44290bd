package create_booking

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PhotographerID <= 0 {
		return fmt.Errorf("%w: photographerID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if len(req.AdditionalServiceIDs) > domain.MaxAdditionalServices {
		return fmt.Errorf("%w: too many additional services", ErrInvalidInput)
	}

	// Для гостя обязательны все контакты
	if req.Actor == nil {
		if err := validateGuest(req.Guest); err != nil {
			return err
		}
	}

	return nil
}

// validateGuest проверяет и нормализует контакты гостя
func validateGuest(guest *domain.GuestContact) error {
	if guest == nil {
		return ErrGuestFieldsRequired
	}

	guest.FirstName = strings.TrimSpace(guest.FirstName)
	guest.LastName = strings.TrimSpace(guest.LastName)
	guest.Email = strings.TrimSpace(guest.Email)

	if guest.FirstName == "" || guest.LastName == "" || guest.Email == "" {
		return ErrGuestFieldsRequired
	}

	if _, err := mail.ParseAddress(guest.Email); err != nil {
		return fmt.Errorf("%w: invalid guest email: %v", ErrInvalidInput, err)
	}

	return nil
}
