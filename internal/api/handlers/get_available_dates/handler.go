package get_available_dates

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	getAvailableDates "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_dates"
)

const (
	msgMissingPhotographer   = "Параметр photographer обов'язковий"
	msgInvalidPhotographerID = "Некоректний ID фотографа"
	msgInvalidServiceID      = "Некоректний ID послуги"
	msgPhotographerNotFound  = "Фотографа не знайдено"
	msgServiceNotFound       = "Послугу не знайдено"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/available-dates
// Query params: photographer (required), service (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	photographerID, ok, err := handlers.QueryID(r, "photographer")
	if !ok {
		h.logger.Warn("GET /bookings/available-dates - Missing photographer")
		handlers.RespondBadRequest(w, msgMissingPhotographer)
		return
	}
	if err != nil {
		h.logger.Warn("GET /bookings/available-dates - Invalid photographer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPhotographerID)
		return
	}

	req := &getAvailableDates.Request{PhotographerID: photographerID}

	serviceID, ok, err := handlers.QueryID(r, "service")
	if err != nil {
		h.logger.Warn("GET /bookings/available-dates - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}
	if ok {
		req.ServiceID = &serviceID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrPhotographerNotFound):
			h.logger.Warn("GET /bookings/available-dates - Photographer not found: photographer_id=%d", photographerID)
			handlers.RespondNotFound(w, msgPhotographerNotFound)

		case errors.Is(err, getAvailableDates.ErrServiceNotFound):
			h.logger.Warn("GET /bookings/available-dates - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /bookings/available-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPhotographerID)

		default:
			h.logger.Error("GET /bookings/available-dates - Failed to get dates: photographer_id=%d, error=%v", photographerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/available-dates - Dates retrieved: photographer_id=%d, dates_count=%d",
		photographerID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
