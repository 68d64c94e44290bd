package get_photographer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/photographers"
)

const (
	msgInvalidPhotographerID = "Некоректний ID фотографа"
	msgPhotographerNotFound  = "Фотографа не знайдено"
)

type Handler struct {
	service PhotographerService
	logger  Logger
}

func NewHandler(service PhotographerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/photographers/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	photographerID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /photographers/{id} - Invalid photographer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPhotographerID)
		return
	}

	result, err := h.service.Get(r.Context(), photographerID)
	if err != nil {
		if errors.Is(err, photographers.ErrPhotographerNotFound) {
			h.logger.Warn("GET /photographers/{id} - Photographer not found: photographer_id=%d", photographerID)
			handlers.RespondNotFound(w, msgPhotographerNotFound)
			return
		}
		h.logger.Error("GET /photographers/{id} - Failed to get photographer: photographer_id=%d, error=%v", photographerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
