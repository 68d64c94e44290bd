package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/calendar"
)

const (
	msgInvalidPhotographerID = "Некоректний ID фотографа"
	msgPhotographerNotFound  = "Фотографа не знайдено"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/photographers/{id}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	photographerID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /photographers/{id}/calendar - Invalid photographer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPhotographerID)
		return
	}

	result, err := h.service.Get(r.Context(), photographerID)
	if err != nil {
		if errors.Is(err, calendar.ErrPhotographerNotFound) {
			h.logger.Warn("GET /photographers/{id}/calendar - Photographer not found: photographer_id=%d", photographerID)
			handlers.RespondNotFound(w, msgPhotographerNotFound)
			return
		}
		h.logger.Error("GET /photographers/{id}/calendar - Failed to get calendar: photographer_id=%d, error=%v", photographerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /photographers/{id}/calendar - Calendar retrieved: photographer_id=%d", photographerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
