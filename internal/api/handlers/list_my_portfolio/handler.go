package list_my_portfolio

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/service/portfolio"
)

const msgAccessDenied = "Ви не є фотографом"

type Handler struct {
	service PortfolioService
	logger  Logger
}

func NewHandler(service PortfolioService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/portfolio/my
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /portfolio/my - Unauthorized access attempt")
		handlers.RespondUnauthorized(w)
		return
	}

	result, err := h.service.ListMine(r.Context(), actor)
	if err != nil {
		if errors.Is(err, portfolio.ErrAccessDenied) {
			h.logger.Warn("GET /portfolio/my - Access denied: user_id=%d, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgAccessDenied)
			return
		}
		h.logger.Error("GET /portfolio/my - Failed to list portfolio: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
