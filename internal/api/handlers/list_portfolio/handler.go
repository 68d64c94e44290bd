package list_portfolio

import (
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/portfolio/models"
)

const (
	msgInvalidPhotographerID = "Некоректний ID фотографа"
	msgInvalidServiceID      = "Некоректний ID послуги"
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

// Handle GET /api/v1/portfolio?photographer=&service=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{}

	photographerID, ok, err := handlers.QueryID(r, "photographer")
	if err != nil {
		h.logger.Warn("GET /portfolio - Invalid photographer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPhotographerID)
		return
	}
	if ok {
		req.PhotographerID = &photographerID
	}

	serviceID, ok, err := handlers.QueryID(r, "service")
	if err != nil {
		h.logger.Warn("GET /portfolio - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}
	if ok {
		req.ServiceID = &serviceID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /portfolio - Failed to list portfolio: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /portfolio - Portfolio listed: count=%d", len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, result)
}
