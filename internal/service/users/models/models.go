package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// UserResponse профиль пользователя
type UserResponse struct {
	ID             int64           `json:"id"`
	Email          string          `json:"email"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Role           string          `json:"role"`
	Discount       decimal.Decimal `json:"personal_discount"`
	PhotographerID *int64          `json:"photographer_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// FromDomainUser конвертирует domain.User в UserResponse
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		Discount:  u.Discount,
		CreatedAt: u.CreatedAt,
	}
}
