package update_my_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/service/calendar"
)

const (
	msgInvalidRequestBody   = "Некоректне тіло запиту"
	msgInvalidCalendar      = "Некоректний робочий календар: початок має бути раніше кінця"
	msgAccessDenied         = "Змінювати календар може тільки фотограф"
	msgPhotographerNotFound = "Профіль фотографа не знайдено"
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

// Handle PUT /api/v1/photographers/me/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PUT /photographers/me/calendar - Unauthorized access attempt")
		handlers.RespondUnauthorized(w)
		return
	}

	var req UpdateCalendarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /photographers/me/calendar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /photographers/me/calendar - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCalendar)
		return
	}

	result, err := h.service.UpdateMine(r.Context(), req.ToServiceRequest(actor))
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrAccessDenied):
			h.logger.Warn("PUT /photographers/me/calendar - Access denied: user_id=%d, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, calendar.ErrInvalidCalendar):
			h.logger.Warn("PUT /photographers/me/calendar - Invalid calendar: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidCalendar)
		case errors.Is(err, calendar.ErrPhotographerNotFound):
			h.logger.Warn("PUT /photographers/me/calendar - Photographer not found: user_id=%d", actor.UserID)
			handlers.RespondNotFound(w, msgPhotographerNotFound)
		default:
			h.logger.Error("PUT /photographers/me/calendar - Failed to update calendar: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /photographers/me/calendar - Calendar updated: photographer_id=%d", result.PhotographerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
