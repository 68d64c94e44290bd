package list_bookings

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings"
	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings/models"
)

const (
	msgInvalidFilter = "Некоректні параметри фільтру"
	msgAccessDenied  = "Недостатньо прав для перегляду цих бронювань"
)

type Handler struct {
	service BookingService
	scope   Scope
	logger  Logger
}

func NewHandler(service BookingService, scope Scope, logger Logger) *Handler {
	return &Handler{
		service: service,
		scope:   scope,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/my, /api/v1/bookings/photographer, /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	route := fmt.Sprintf("GET /bookings (%s)", h.scope)

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("%s - Unauthorized access attempt", route)
		handlers.RespondUnauthorized(w)
		return
	}

	req, err := ToServiceRequest(actor, r)
	if err != nil {
		h.logger.Warn("%s - Invalid filter: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.list(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("%s - Access denied: user_id=%d, role=%s", route, actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("%s - Invalid filter: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
		default:
			h.logger.Error("%s - Failed to list bookings: user_id=%d, error=%v", route, actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Bookings retrieved: user_id=%d, count=%d", route, actor.UserID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) list(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	switch h.scope {
	case ScopePhotographer:
		return h.service.ListPhotographer(ctx, req)
	case ScopeAll:
		return h.service.ListAll(ctx, req)
	default:
		return h.service.ListMy(ctx, req)
	}
}
