package update_homepage

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/homepage/models"
)

// UpdateContentRequest HTTP request model; для PUT заголовок и описание обязательны
type UpdateContentRequest struct {
	Title            *string   `json:"title" validate:"omitempty,max=200"`
	Description      *string   `json:"description"`
	ContactEmails    *[]string `json:"contact_emails" validate:"omitempty,dive,email"`
	ContactPhones    *[]string `json:"contact_phones" validate:"omitempty,dive,max=20"`
	ContactAddresses *[]string `json:"contact_addresses"`
	GuestPromoText   *string   `json:"guest_promo_text"`
}

// complete PUT заменяет контент целиком
func (r *UpdateContentRequest) complete() bool {
	return r.Title != nil && r.Description != nil
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateContentRequest) ToServiceRequest(actor domain.Actor) *models.UpdateContentRequest {
	return &models.UpdateContentRequest{
		Actor:            actor,
		Title:            r.Title,
		Description:      r.Description,
		ContactEmails:    r.ContactEmails,
		ContactPhones:    r.ContactPhones,
		ContactAddresses: r.ContactAddresses,
		GuestPromoText:   r.GuestPromoText,
	}
}
