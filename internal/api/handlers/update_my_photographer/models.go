package update_my_photographer

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/photographers/models"
)

// UpdateProfileRequest HTTP request model; отсутствующее поле не меняется
type UpdateProfileRequest struct {
	Bio        *string  `json:"bio" validate:"omitempty,max=2000"`
	Phone      *string  `json:"phone" validate:"omitempty,max=20"`
	ServiceIDs *[]int64 `json:"service_ids" validate:"omitempty,dive,gt=0"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateProfileRequest) ToServiceRequest(actor domain.Actor) *models.UpdateProfileRequest {
	return &models.UpdateProfileRequest{
		Actor:      actor,
		Bio:        r.Bio,
		Phone:      r.Phone,
		ServiceIDs: r.ServiceIDs,
	}
}
