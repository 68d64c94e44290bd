package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// Request модели

// ListBookingsRequest фильтр списка бронирований
type ListBookingsRequest struct {
	Actor           domain.Actor
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *domain.BookingStatus
	IncludeInactive bool
}

// Response модели

// GuestResponse контакты гостя
type GuestResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// CancellationResponse кто, когда и почему отменил бронирование
type CancellationResponse struct {
	By     string     `json:"by"`
	Reason *string    `json:"reason,omitempty"`
	At     *time.Time `json:"at,omitempty"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                   int64                 `json:"id"`
	PhotographerID       int64                 `json:"photographer_id"`
	ServiceID            int64                 `json:"service_id"`
	Date                 string                `json:"date"`       // "2025-10-15"
	StartTime            string                `json:"start_time"` // "10:00"
	EndTime              string                `json:"end_time"`
	Status               string                `json:"status"`
	UserID               *int64                `json:"user_id,omitempty"`
	Guest                *GuestResponse        `json:"guest,omitempty"`
	Price                decimal.Decimal       `json:"price"`
	AdditionalServiceIDs []int64               `json:"additional_service_ids"`
	ResultPhotos         []string              `json:"result_photos"`
	ResultVideos         []string              `json:"result_videos"`
	Cancellation         *CancellationResponse `json:"cancellation,omitempty"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                   b.ID,
		PhotographerID:       b.PhotographerID,
		ServiceID:            b.ServiceID,
		Date:                 b.Date.Format(domain.DateFormat),
		StartTime:            b.StartTime.String(),
		EndTime:              b.EndTime.String(),
		Status:               string(b.Status),
		UserID:               b.UserID,
		Price:                b.Price,
		AdditionalServiceIDs: orEmpty(b.AdditionalServiceIDs),
		ResultPhotos:         orEmpty(b.ResultPhotos),
		ResultVideos:         orEmpty(b.ResultVideos),
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}

	if b.Guest != nil {
		resp.Guest = &GuestResponse{
			FirstName: b.Guest.FirstName,
			LastName:  b.Guest.LastName,
			Email:     b.Guest.Email,
		}
	}

	if b.CancelledBy != nil {
		resp.Cancellation = &CancellationResponse{
			By:     string(*b.CancelledBy),
			Reason: b.CancellationReason,
			At:     b.CancelledAt,
		}
	}

	return resp
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, *FromDomainBooking(b))
	}
	return result
}

func orEmpty[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
