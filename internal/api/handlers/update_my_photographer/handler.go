package update_my_photographer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/service/photographers"
)

const (
	msgInvalidRequestBody   = "Некоректне тіло запиту"
	msgInvalidProfile       = "Некоректні дані профілю"
	msgUnknownService       = "Послугу не знайдено"
	msgAccessDenied         = "Змінювати профіль може тільки фотограф"
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

// Handle PATCH /api/v1/photographers/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /photographers/me - Unauthorized access attempt")
		handlers.RespondUnauthorized(w)
		return
	}

	var req UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /photographers/me - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PATCH /photographers/me - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfile)
		return
	}

	result, err := h.service.UpdateMe(r.Context(), req.ToServiceRequest(actor))
	if err != nil {
		switch {
		case errors.Is(err, photographers.ErrAccessDenied):
			h.logger.Warn("PATCH /photographers/me - Access denied: user_id=%d, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, photographers.ErrUnknownService):
			h.logger.Warn("PATCH /photographers/me - Unknown service: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, msgUnknownService)
		case errors.Is(err, photographers.ErrPhotographerNotFound):
			h.logger.Warn("PATCH /photographers/me - Photographer not found: user_id=%d", actor.UserID)
			handlers.RespondNotFound(w, msgPhotographerNotFound)
		default:
			h.logger.Error("PATCH /photographers/me - Failed to update profile: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /photographers/me - Profile updated: photographer_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
