package reset_discount

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/service/users"
)

const (
	msgInvalidUserID = "Некоректний ID користувача"
	msgUserNotFound  = "Користувача не знайдено"
	msgAccessDenied  = "Скидати знижку може тільки адміністратор"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/users/{id}/discount/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /users/{id}/discount/reset - Unauthorized access attempt")
		handlers.RespondUnauthorized(w)
		return
	}

	userID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("POST /users/{id}/discount/reset - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	user, err := h.service.ResetDiscount(r.Context(), actor, userID)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrAccessDenied):
			h.logger.Warn("POST /users/{id}/discount/reset - Access denied: user_id=%d, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("POST /users/{id}/discount/reset - User not found: target_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)
		default:
			h.logger.Error("POST /users/{id}/discount/reset - Failed to reset discount: target_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/{id}/discount/reset - Discount reset: target_id=%d, admin_id=%d", userID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
