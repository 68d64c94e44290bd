package list_photographers

import (
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
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

// Handle GET /api/v1/photographers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /photographers - Failed to list photographers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /photographers - Photographers listed: count=%d", len(result.Photographers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
