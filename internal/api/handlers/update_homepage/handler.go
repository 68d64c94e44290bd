package update_homepage

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/service/homepage"
)

const (
	msgInvalidRequestBody = "Некоректне тіло запиту"
	msgInvalidContent     = "Заголовок та опис не можуть бути порожніми"
	msgAccessDenied       = "Тільки адміністратор може редагувати контент"
)

type Handler struct {
	service HomePageService
	logger  Logger
}

func NewHandler(service HomePageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT|PATCH /api/v1/homepage-content
// PATCH меняет только переданные поля.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	route := r.Method + " /homepage-content"

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("%s - Unauthorized access attempt", route)
		handlers.RespondUnauthorized(w)
		return
	}

	var req UpdateContentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if r.Method == http.MethodPut && !req.complete() {
		h.logger.Warn("%s - Title or description missing: user_id=%d", route, actor.UserID)
		handlers.RespondBadRequest(w, msgInvalidContent)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(actor))
	if err != nil {
		switch {
		case errors.Is(err, homepage.ErrAccessDenied):
			h.logger.Warn("%s - Access denied: user_id=%d, role=%s", route, actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, homepage.ErrInvalidContent):
			h.logger.Warn("%s - Invalid content: user_id=%d", route, actor.UserID)
			handlers.RespondBadRequest(w, msgInvalidContent)
		default:
			h.logger.Error("%s - Failed to update content: user_id=%d, error=%v", route, actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Content updated: user_id=%d", route, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
