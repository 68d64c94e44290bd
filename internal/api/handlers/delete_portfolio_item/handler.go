package delete_portfolio_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/service/portfolio"
)

const (
	msgInvalidItemID    = "Некоректний ID роботи"
	msgItemNotFound     = "Роботу не знайдено"
	msgPermissionDenied = "Ви можете видаляти лише свої роботи"
)

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

// Handle DELETE /api/v1/portfolio/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("DELETE /portfolio/{id} - Unauthorized access attempt")
		handlers.RespondUnauthorized(w)
		return
	}

	itemID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /portfolio/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	if err := h.service.Delete(r.Context(), actor, itemID); err != nil {
		switch {
		case errors.Is(err, portfolio.ErrItemNotFound):
			h.logger.Warn("DELETE /portfolio/{id} - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)
		case errors.Is(err, portfolio.ErrPermissionDenied):
			h.logger.Warn("DELETE /portfolio/{id} - Permission denied: item_id=%d, user_id=%d", itemID, actor.UserID)
			handlers.RespondForbidden(w, msgPermissionDenied)
		default:
			h.logger.Error("DELETE /portfolio/{id} - Failed to delete item: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /portfolio/{id} - Item deleted: item_id=%d, user_id=%d", itemID, actor.UserID)
	w.WriteHeader(http.StatusNoContent)
}
