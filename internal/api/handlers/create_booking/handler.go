package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "Некоректне тіло запиту"
	msgInvalidDate          = "Некоректний формат дати, очікується YYYY-MM-DD"
	msgInvalidTime          = "Некоректний формат часу, очікується HH:MM"
	msgPhotographerNotFound = "Фотографа не знайдено"
	msgServiceNotFound      = "Послугу не знайдено"
	msgAdditionalNotFound   = "Додаткову послугу не знайдено"
	msgServiceNotOffered    = "Фотограф не надає цю послугу"
	msgGuestFieldsRequired  = "Ім'я, прізвище та email обов'язкові для гостей"
	msgEmailRegistered      = "Користувач з такою поштою вже зареєстрований. Будь ласка, увійдіть у свій акаунт для бронювання."
	msgDayClosed            = "Фотограф не працює у цей день"
	msgOutsideHours         = "Час початку поза робочим часом"
	msgExceedsDayEnd        = "Час закінчення виходить за межі робочого дня"
	msgTimePassed           = "Цей час вже минув"
	msgSlotTaken            = "Цей час вже зайнятий"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid start time")
)

// rejections отказы по слоту и конфликты; все отдаются как 400
var rejections = []struct {
	err error
	msg string
}{
	{createBooking.ErrDayClosed, msgDayClosed},
	{createBooking.ErrOutsideHours, msgOutsideHours},
	{createBooking.ErrExceedsDayEnd, msgExceedsDayEnd},
	{createBooking.ErrTimePassed, msgTimePassed},
	{createBooking.ErrSlotTaken, msgSlotTaken},
	{createBooking.ErrGuestFieldsRequired, msgGuestFieldsRequired},
	{createBooking.ErrEmailRegistered, msgEmailRegistered},
	{createBooking.ErrServiceNotOffered, msgServiceNotOffered},
}

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// Авторизация необязательна: без токена бронирование оформляется на гостя.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var actor *domain.Actor
	if a, ok := middleware.GetActor(r.Context()); ok {
		actor = &a
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondUseCaseError(w, &req, err)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, photographer_id=%d, guest=%t",
		result.Booking.ID, req.PhotographerID, actor == nil)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, req *CreateBookingRequest, err error) {
	for _, rj := range rejections {
		if errors.Is(err, rj.err) {
			h.logger.Warn("POST /bookings - Booking rejected: photographer_id=%d, date=%s, start_time=%s, reason=%v",
				req.PhotographerID, req.Date, req.StartTime, err)
			handlers.RespondBadRequest(w, rj.msg)
			return
		}
	}

	switch {
	case errors.Is(err, createBooking.ErrPhotographerNotFound):
		h.logger.Warn("POST /bookings - Photographer not found: photographer_id=%d", req.PhotographerID)
		handlers.RespondNotFound(w, msgPhotographerNotFound)

	case errors.Is(err, createBooking.ErrServiceNotFound):
		h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, createBooking.ErrAdditionalServiceNotFound):
		h.logger.Warn("POST /bookings - Additional service not found: ids=%v", req.AdditionalServiceIDs)
		handlers.RespondNotFound(w, msgAdditionalNotFound)

	case errors.Is(err, createBooking.ErrInvalidInput):
		h.logger.Warn("POST /bookings - Invalid input: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	default:
		h.logger.Error("POST /bookings - Failed to create booking: photographer_id=%d, service_id=%d, error=%v",
			req.PhotographerID, req.ServiceID, err)
		handlers.RespondInternalError(w)
	}
}
