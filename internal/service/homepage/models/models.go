package models

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// UpdateContentRequest изменения контента; nil - поле не меняется
type UpdateContentRequest struct {
	Actor            domain.Actor
	Title            *string
	Description      *string
	ContactEmails    *[]string
	ContactPhones    *[]string
	ContactAddresses *[]string
	GuestPromoText   *string
}

// ContentResponse контент главной страницы
type ContentResponse struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ContactEmails    []string   `json:"contact_emails"`
	ContactPhones    []string   `json:"contact_phones"`
	ContactAddresses []string   `json:"contact_addresses"`
	GuestPromoText   string     `json:"guest_promo_text"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

// FromDomainContent конвертирует domain.HomePageContent в ContentResponse
func FromDomainContent(c *domain.HomePageContent) *ContentResponse {
	resp := &ContentResponse{
		Title:            c.Title,
		Description:      c.Description,
		ContactEmails:    orEmpty(c.ContactEmails),
		ContactPhones:    orEmpty(c.ContactPhones),
		ContactAddresses: orEmpty(c.ContactAddresses),
		GuestPromoText:   c.GuestPromoText,
	}
	if !c.UpdatedAt.IsZero() {
		updated := c.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}

func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
