package get_my_photographer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/service/photographers"
)

const (
	msgAccessDenied         = "Ви не є фотографом"
	msgPhotographerNotFound = "Профіль фотографа не знайдено"
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

// Handle GET /api/v1/photographers/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /photographers/me - Unauthorized access attempt")
		handlers.RespondUnauthorized(w)
		return
	}

	result, err := h.service.Me(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, photographers.ErrAccessDenied):
			h.logger.Warn("GET /photographers/me - Access denied: user_id=%d, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, photographers.ErrPhotographerNotFound):
			h.logger.Warn("GET /photographers/me - Photographer not found: user_id=%d", actor.UserID)
			handlers.RespondNotFound(w, msgPhotographerNotFound)
		default:
			h.logger.Error("GET /photographers/me - Failed to get profile: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
