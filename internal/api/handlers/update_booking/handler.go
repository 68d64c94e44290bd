package update_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	updateBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "Некоректний ID бронювання"
	msgInvalidRequestBody = "Некоректне тіло запиту"
	msgInvalidStatus      = "Невідомий статус бронювання"
	msgBookingNotFound    = "Бронювання не знайдено"
	msgPermissionDenied   = "Недостатньо прав для цієї дії"
	msgInvalidTransition  = "Неможливо змінити статус бронювання"
	msgResultsRequired    = "Спочатку завантажте результати фотосесії"
	msgNotEditable        = "Бронювання більше не можна змінювати"
	msgServiceNotFound    = "Послугу не знайдено"
	msgAdditionalNotFound = "Додаткову послугу не знайдено"
	msgServiceNotOffered  = "Фотограф не надає цю послугу"
	msgOutsideHours       = "Час початку поза робочим часом"
	msgExceedsDayEnd      = "Час закінчення виходить за межі робочого дня"
	msgSlotTaken          = "Цей час вже зайнятий"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id} - Unauthorized access attempt")
		handlers.RespondUnauthorized(w)
		return
	}

	bookingID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Validation failed: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid status: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrPermissionDenied):
			h.logger.Warn("PATCH /bookings/{id} - Permission denied: booking_id=%d, user_id=%d, role=%s",
				bookingID, actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, updateBooking.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id} - Invalid transition: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, updateBooking.ErrResultsRequired):
			h.logger.Warn("PATCH /bookings/{id} - Results required: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgResultsRequired)

		case errors.Is(err, updateBooking.ErrNotEditable):
			h.logger.Warn("PATCH /bookings/{id} - Not editable: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNotEditable)

		case errors.Is(err, updateBooking.ErrServiceNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Service not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateBooking.ErrAdditionalServiceNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Additional service not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgAdditionalNotFound)

		case errors.Is(err, updateBooking.ErrServiceNotOffered):
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, updateBooking.ErrOutsideHours):
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, updateBooking.ErrExceedsDayEnd):
			handlers.RespondBadRequest(w, msgExceedsDayEnd)

		case errors.Is(err, updateBooking.ErrSlotTaken):
			h.logger.Warn("PATCH /bookings/{id} - Slot taken after service change: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgSlotTaken)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated: booking_id=%d, status=%s, user_id=%d",
		bookingID, result.Booking.Status, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
