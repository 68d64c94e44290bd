package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingParams         = "Параметри photographer, service та date обов'язкові"
	msgInvalidPhotographerID = "Некоректний ID фотографа"
	msgInvalidServiceID      = "Некоректний ID послуги"
	msgInvalidDate           = "Некоректний формат дати, очікується YYYY-MM-DD"
	msgPhotographerNotFound  = "Фотографа не знайдено"
	msgServiceNotFound       = "Послугу не знайдено"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/available-slots
// Query params: photographer, service, date (YYYY-MM-DD), все обязательны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	dateStr := query.Get("date")
	if query.Get("photographer") == "" || query.Get("service") == "" || dateStr == "" {
		h.logger.Warn("GET /bookings/available-slots - Missing query params: %s", r.URL.RawQuery)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	photographerID, _, err := handlers.QueryID(r, "photographer")
	if err != nil {
		h.logger.Warn("GET /bookings/available-slots - Invalid photographer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPhotographerID)
		return
	}

	serviceID, _, err := handlers.QueryID(r, "service")
	if err != nil {
		h.logger.Warn("GET /bookings/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /bookings/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(photographerID, serviceID, date))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrPhotographerNotFound):
			h.logger.Warn("GET /bookings/available-slots - Photographer not found: photographer_id=%d", photographerID)
			handlers.RespondNotFound(w, msgPhotographerNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /bookings/available-slots - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /bookings/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingParams)

		default:
			h.logger.Error("GET /bookings/available-slots - Failed to get slots: photographer_id=%d, service_id=%d, error=%v",
				photographerID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/available-slots - Slots retrieved: photographer_id=%d, service_id=%d, date=%s, slots_count=%d",
		photographerID, serviceID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
