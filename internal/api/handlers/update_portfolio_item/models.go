package update_portfolio_item

import (
	"errors"
	"mime/multipart"
	"strconv"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/portfolio/models"
)

const (
	fieldImage       = "image"
	fieldServiceID   = "service_id"
	fieldDescription = "description"
)

var errInvalidServiceID = errors.New("service_id must be a positive integer")

// UpdateItemRequest HTTP request model для JSON тела; отсутствующее поле не меняется
type UpdateItemRequest struct {
	ServiceID   *int64  `json:"service_id" validate:"omitempty,gt=0"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateItemRequest) ToServiceRequest(actor domain.Actor, itemID int64) *models.UpdateItemRequest {
	return &models.UpdateItemRequest{
		Actor:       actor,
		ID:          itemID,
		ServiceID:   r.ServiceID,
		Description: r.Description,
	}
}

// FromForm собирает запрос из multipart формы: image, service_id, description
func FromForm(form *multipart.Form) (*UpdateItemRequest, *multipart.FileHeader, error) {
	req := &UpdateItemRequest{}

	if values := form.Value[fieldServiceID]; len(values) > 0 {
		id, err := strconv.ParseInt(values[0], 10, 64)
		if err != nil {
			return nil, nil, errInvalidServiceID
		}
		req.ServiceID = &id
	}
	if values := form.Value[fieldDescription]; len(values) > 0 {
		description := values[0]
		req.Description = &description
	}

	var image *multipart.FileHeader
	if files := form.File[fieldImage]; len(files) > 0 {
		image = files[0]
	}
	return req, image, nil
}
