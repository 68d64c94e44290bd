package update_booking

import (
	"errors"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrPermissionDenied возвращается, когда актор не может выполнить действие
	ErrPermissionDenied = errors.New("update_booking: permission denied")

	// ErrInvalidTransition возвращается, когда переход между статусами не допускается
	ErrInvalidTransition = errors.New("update_booking: invalid status transition")

	// ErrResultsRequired возвращается при завершении без загруженных результатов
	ErrResultsRequired = errors.New("update_booking: upload results before completing")

	// ErrNotEditable возвращается, когда бронирование нельзя редактировать в текущем статусе
	ErrNotEditable = errors.New("update_booking: booking is not editable")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("update_booking: service not found")

	// ErrAdditionalServiceNotFound возвращается, когда дополнительная услуга не найдена
	ErrAdditionalServiceNotFound = errors.New("update_booking: additional service not found")

	// ErrServiceNotOffered возвращается, когда фотограф не оказывает новую услугу
	ErrServiceNotOffered = errors.New("update_booking: photographer does not offer this service")

	// ErrOutsideHours возвращается, когда бронирование оказывается вне рабочего времени
	ErrOutsideHours = errors.New("update_booking: booking is outside working hours")

	// ErrExceedsDayEnd возвращается, когда новая услуга заканчивается после конца рабочего дня
	ErrExceedsDayEnd = errors.New("update_booking: session ends after the working day")

	// ErrSlotTaken возвращается, когда более длинная сессия пересекается с другим бронированием
	ErrSlotTaken = errors.New("update_booking: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)

// reasonErrors ошибка для каждой причины отказа при смене услуги
var reasonErrors = map[domain.SlotReason]error{
	domain.ReasonOutsideHours:  ErrOutsideHours,
	domain.ReasonExceedsDayEnd: ErrExceedsDayEnd,
	domain.ReasonSlotTaken:     ErrSlotTaken,
}

// domainErrors соответствие ошибок машины состояний ошибкам usecase
var domainErrors = []struct {
	domain error
	usecase error
}{
	{domain.ErrInvalidTransition, ErrInvalidTransition},
	{domain.ErrPermissionDenied, ErrPermissionDenied},
	{domain.ErrResultsRequired, ErrResultsRequired},
	{domain.ErrNotEditable, ErrNotEditable},
}

// mapDomainError переводит ошибку доменного уровня в ошибку usecase
func mapDomainError(err error) error {
	for _, m := range domainErrors {
		if errors.Is(err, m.domain) {
			return m.usecase
		}
	}
	return ErrInternal
}
