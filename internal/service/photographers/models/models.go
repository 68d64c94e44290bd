package models

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// UpdateProfileRequest изменения профиля текущего фотографа; nil - поле не меняется
type UpdateProfileRequest struct {
	Actor      domain.Actor
	Bio        *string
	Phone      *string
	ServiceIDs *[]int64
}

// ToDomainUpdate конвертирует запрос в domain.PhotographerUpdate
func (r *UpdateProfileRequest) ToDomainUpdate() domain.PhotographerUpdate {
	return domain.PhotographerUpdate{
		Bio:        r.Bio,
		Phone:      r.Phone,
		ServiceIDs: r.ServiceIDs,
	}
}

// PhotographerResponse публичный профиль фотографа
type PhotographerResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"user_id"`
	Email      string  `json:"email"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Bio        string  `json:"bio"`
	Phone      string  `json:"phone"`
	ServiceIDs []int64 `json:"service_ids"`
	WorkDays   []int   `json:"work_days"` // 0=Пн..6=Вс
	WorkStart  string  `json:"work_start"`
	WorkEnd    string  `json:"work_end"`
}

// PhotographerListResponse список фотографов
type PhotographerListResponse struct {
	Photographers []PhotographerResponse `json:"photographers"`
}

// FromDomainProfile конвертирует domain.PhotographerProfile в PhotographerResponse
func FromDomainProfile(p *domain.PhotographerProfile) *PhotographerResponse {
	services := p.ServiceIDs
	if services == nil {
		services = []int64{}
	}
	days := p.Calendar.Days
	if days == nil {
		days = []int{}
	}
	return &PhotographerResponse{
		ID:         p.ID,
		UserID:     p.UserID,
		Email:      p.Email,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Bio:        p.Bio,
		Phone:      p.Phone,
		ServiceIDs: services,
		WorkDays:   days,
		WorkStart:  p.Calendar.Start.String(),
		WorkEnd:    p.Calendar.End.String(),
	}
}

// FromDomainProfiles конвертирует список профилей
func FromDomainProfiles(profiles []domain.PhotographerProfile) *PhotographerListResponse {
	resp := &PhotographerListResponse{Photographers: make([]PhotographerResponse, 0, len(profiles))}
	for i := range profiles {
		resp.Photographers = append(resp.Photographers, *FromDomainProfile(&profiles[i]))
	}
	return resp
}
