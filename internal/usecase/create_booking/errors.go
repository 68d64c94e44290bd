package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var (
	// ErrPhotographerNotFound возвращается, когда фотограф не найден
	ErrPhotographerNotFound = errors.New("create_booking: photographer not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrAdditionalServiceNotFound возвращается, когда дополнительная услуга не найдена
	ErrAdditionalServiceNotFound = errors.New("create_booking: additional service not found")

	// ErrServiceNotOffered возвращается, когда фотограф не оказывает услугу
	ErrServiceNotOffered = errors.New("create_booking: photographer does not offer this service")

	// ErrGuestFieldsRequired возвращается, когда у гостя не указаны имя, фамилия или email
	ErrGuestFieldsRequired = errors.New("create_booking: guest first name, last name and email are required")

	// ErrEmailRegistered возвращается, когда гость указал email зарегистрированного пользователя
	ErrEmailRegistered = errors.New("create_booking: email belongs to a registered user")

	// ErrDayClosed возвращается, когда фотограф не работает в этот день недели
	ErrDayClosed = errors.New("create_booking: photographer does not work on this day")

	// ErrOutsideHours возвращается, когда время начала вне рабочего времени
	ErrOutsideHours = errors.New("create_booking: start time is outside working hours")

	// ErrExceedsDayEnd возвращается, когда сессия заканчивается после конца рабочего дня
	ErrExceedsDayEnd = errors.New("create_booking: session ends after the working day")

	// ErrTimePassed возвращается, когда время начала уже прошло
	ErrTimePassed = errors.New("create_booking: start time has already passed")

	// ErrSlotTaken возвращается, когда слот пересекается с другим бронированием
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// reasonErrors ошибка для каждой причины отказа в слоте
var reasonErrors = map[domain.SlotReason]error{
	domain.ReasonDayClosed:     ErrDayClosed,
	domain.ReasonOutsideHours:  ErrOutsideHours,
	domain.ReasonExceedsDayEnd: ErrExceedsDayEnd,
	domain.ReasonTimePassed:    ErrTimePassed,
	domain.ReasonSlotTaken:     ErrSlotTaken,
}
