package update_portfolio_item

import (
	"errors"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/service/portfolio"
)

const (
	msgInvalidItemID      = "Некоректний ID роботи"
	msgInvalidRequestBody = "Некоректне тіло запиту"
	msgItemNotFound       = "Роботу не знайдено"
	msgPermissionDenied   = "Ви можете редагувати лише свої роботи"
	msgUnknownService     = "Послугу не знайдено"
	msgInvalidImage       = "Файл не є зображенням"
	msgImageTooLarge      = "Зображення завелике"

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

// Handle PATCH /api/v1/portfolio/{id}
// JSON {service_id, description} или multipart/form-data с новым image
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /portfolio/{id} - Unauthorized access attempt")
		handlers.RespondUnauthorized(w)
		return
	}

	itemID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /portfolio/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	req, image, err := h.decode(r)
	if r.MultipartForm != nil {
		defer func() {
			_ = r.MultipartForm.RemoveAll()
		}()
	}
	if err != nil {
		h.logger.Warn("PATCH /portfolio/{id} - Invalid request body: item_id=%d, error=%v", itemID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("PATCH /portfolio/{id} - Validation failed: item_id=%d, error=%v", itemID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := req.ToServiceRequest(actor, itemID)
	serviceReq.Image = image

	result, err := h.service.Update(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, portfolio.ErrItemNotFound):
			h.logger.Warn("PATCH /portfolio/{id} - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)
		case errors.Is(err, portfolio.ErrPermissionDenied):
			h.logger.Warn("PATCH /portfolio/{id} - Permission denied: item_id=%d, user_id=%d", itemID, actor.UserID)
			handlers.RespondForbidden(w, msgPermissionDenied)
		case errors.Is(err, portfolio.ErrUnknownService):
			h.logger.Warn("PATCH /portfolio/{id} - Unknown service: item_id=%d, error=%v", itemID, err)
			handlers.RespondBadRequest(w, msgUnknownService)
		case errors.Is(err, portfolio.ErrInvalidImage):
			h.logger.Warn("PATCH /portfolio/{id} - Image rejected: item_id=%d, error=%v", itemID, err)
			handlers.RespondBadRequest(w, msgInvalidImage)
		case errors.Is(err, portfolio.ErrImageTooLarge):
			h.logger.Warn("PATCH /portfolio/{id} - Image too large: item_id=%d", itemID)
			handlers.RespondBadRequest(w, msgImageTooLarge)
		default:
			h.logger.Error("PATCH /portfolio/{id} - Failed to update item: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /portfolio/{id} - Item updated: item_id=%d, user_id=%d", itemID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) decode(r *http.Request) (*UpdateItemRequest, *multipart.FileHeader, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var req UpdateItemRequest
		if err := handlers.DecodeJSON(r, &req); err != nil {
			return nil, nil, err
		}
		return &req, nil, nil
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, nil, err
	}
	return FromForm(r.MultipartForm)
}
