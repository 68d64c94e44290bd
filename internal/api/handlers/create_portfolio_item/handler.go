package create_portfolio_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/service/portfolio"
)

const (
	msgInvalidForm    = "Некоректна multipart-форма"
	msgAccessDenied   = "Додавати роботи може тільки фотограф"
	msgUnknownService = "Послугу не знайдено"
	msgImageRequired  = "Потрібно завантажити зображення"
	msgInvalidImage   = "Файл не є зображенням"
	msgImageTooLarge  = "Зображення завелике"

	// multipartMemory часть формы, которая держится в памяти; остальное уходит во временные файлы
	multipartMemory = 32 << 20
)

type Handler struct {
	service      PortfolioService
	maxBodyBytes int64
	logger       Logger
}

// NewHandler maxBodyBytes ограничивает размер всего запроса
func NewHandler(service PortfolioService, maxBodyBytes int64, logger Logger) *Handler {
	return &Handler{
		service:      service,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

// Handle POST /api/v1/portfolio/my
// multipart/form-data: image, service_id, description
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /portfolio/my - Unauthorized access attempt")
		handlers.RespondUnauthorized(w)
		return
	}

	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		h.logger.Warn("POST /portfolio/my - Invalid multipart form: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	req, err := ToServiceRequest(actor, r.MultipartForm)
	if err != nil {
		h.logger.Warn("POST /portfolio/my - Invalid form fields: user_id=%d, error=%v", actor.UserID, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	result, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, portfolio.ErrAccessDenied):
			h.logger.Warn("POST /portfolio/my - Access denied: user_id=%d, role=%s", actor.UserID, actor.Role)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, portfolio.ErrUnknownService):
			h.logger.Warn("POST /portfolio/my - Unknown service: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgUnknownService)
		case errors.Is(err, portfolio.ErrImageRequired):
			h.logger.Warn("POST /portfolio/my - Image missing: user_id=%d", actor.UserID)
			handlers.RespondBadRequest(w, msgImageRequired)
		case errors.Is(err, portfolio.ErrInvalidImage):
			h.logger.Warn("POST /portfolio/my - Image rejected: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidImage)
		case errors.Is(err, portfolio.ErrImageTooLarge):
			h.logger.Warn("POST /portfolio/my - Image too large: user_id=%d", actor.UserID)
			handlers.RespondBadRequest(w, msgImageTooLarge)
		default:
			h.logger.Error("POST /portfolio/my - Failed to create item: user_id=%d, error=%v", actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /portfolio/my - Item created: item_id=%d, photographer_id=%d", result.ID, result.PhotographerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
