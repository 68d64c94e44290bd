package send_results_email

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	sendResultsEmail "github.com/m04kA/SMC-StudioBooking/internal/usecase/send_results_email"
)

const (
	msgInvalidBookingID   = "Некоректний ID бронювання"
	msgInvalidRequestBody = "Некоректне тіло запиту"
	msgBookingNotFound    = "Бронювання не знайдено"
	msgPermissionDenied   = "Недостатньо прав для відправки результатів"
	msgNoResults          = "Немає результатів для відправки"
	msgNoRecipient        = "Email не вказано"
	msgSendFailed         = "Не вдалося відправити email"
	msgSent               = "Результати успішно відправлено на email"
)

type Handler struct {
	useCase SendResultsEmailUseCase
	logger  Logger
}

func NewHandler(useCase SendResultsEmailUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{id}/send-results-email
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/send-results-email - Unauthorized access attempt")
		handlers.RespondUnauthorized(w)
		return
	}

	bookingID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/send-results-email - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req SendResultsEmailRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /bookings/{id}/send-results-email - Invalid request body: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings/{id}/send-results-email - Validation failed: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, sendResultsEmail.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/send-results-email - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, sendResultsEmail.ErrPermissionDenied):
			h.logger.Warn("POST /bookings/{id}/send-results-email - Permission denied: booking_id=%d, user_id=%d", bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgPermissionDenied)

		case errors.Is(err, sendResultsEmail.ErrNoResults):
			h.logger.Warn("POST /bookings/{id}/send-results-email - No results: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNoResults)

		case errors.Is(err, sendResultsEmail.ErrNoRecipient):
			h.logger.Warn("POST /bookings/{id}/send-results-email - No recipient: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNoRecipient)

		case errors.Is(err, sendResultsEmail.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/send-results-email - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, sendResultsEmail.ErrSendFailed):
			h.logger.Error("POST /bookings/{id}/send-results-email - SMTP failure: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadGateway(w, msgSendFailed)

		default:
			h.logger.Error("POST /bookings/{id}/send-results-email - Failed to send results: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/send-results-email - Results sent: booking_id=%d", bookingID)
	handlers.RespondDetail(w, msgSent)
}
