package models

import (
	"mime/multipart"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// Request модели

// ListRequest фильтр галереи
type ListRequest struct {
	PhotographerID *int64
	ServiceID      *int64
}

// CreateItemRequest новая работа текущего фотографа
type CreateItemRequest struct {
	Actor       domain.Actor
	ServiceID   int64
	Description string
	Image       *multipart.FileHeader
}

// UpdateItemRequest изменения работы; nil - поле не меняется
type UpdateItemRequest struct {
	Actor       domain.Actor
	ID          int64
	ServiceID   *int64
	Description *string
	Image       *multipart.FileHeader
}

// Response модели

// ItemResponse работа портфолио
type ItemResponse struct {
	ID             int64     `json:"id"`
	PhotographerID int64     `json:"photographer_id"`
	ServiceID      int64     `json:"service_id"`
	Image          string    `json:"image"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ListResponse список работ
type ListResponse struct {
	Items []ItemResponse `json:"items"`
}

// FromDomainItem конвертирует domain.PortfolioItem в ItemResponse
func FromDomainItem(item *domain.PortfolioItem) *ItemResponse {
	return &ItemResponse{
		ID:             item.ID,
		PhotographerID: item.PhotographerID,
		ServiceID:      item.ServiceID,
		Image:          item.Image,
		Description:    item.Description,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

// FromDomainItems конвертирует список работ
func FromDomainItems(items []*domain.PortfolioItem) *ListResponse {
	resp := &ListResponse{Items: make([]ItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, *FromDomainItem(item))
	}
	return resp
}
