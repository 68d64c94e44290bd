package create_portfolio_item

import (
	"errors"
	"mime/multipart"
	"strconv"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/portfolio/models"
)

// Поля формы: image, service_id, description
const (
	fieldImage       = "image"
	fieldServiceID   = "service_id"
	fieldDescription = "description"

	maxDescription = 2000
)

var (
	errInvalidServiceID = errors.New("service_id must be a positive integer")
	errDescriptionLong  = errors.New("description is too long")
)

// ToServiceRequest собирает запрос сервиса из multipart формы
func ToServiceRequest(actor domain.Actor, form *multipart.Form) (*models.CreateItemRequest, error) {
	serviceID, err := strconv.ParseInt(formValue(form, fieldServiceID), 10, 64)
	if err != nil || serviceID <= 0 {
		return nil, errInvalidServiceID
	}

	description := formValue(form, fieldDescription)
	if len([]rune(description)) > maxDescription {
		return nil, errDescriptionLong
	}

	req := &models.CreateItemRequest{
		Actor:       actor,
		ServiceID:   serviceID,
		Description: description,
	}
	if files := form.File[fieldImage]; len(files) > 0 {
		req.Image = files[0]
	}
	return req, nil
}

func formValue(form *multipart.Form, field string) string {
	if values := form.Value[field]; len(values) > 0 {
		return values[0]
	}
	return ""
}
