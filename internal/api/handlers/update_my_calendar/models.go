package update_my_calendar

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/calendar/models"
)

// UpdateCalendarRequest HTTP request model
type UpdateCalendarRequest struct {
	WorkDays  []int  `json:"work_days" validate:"required,min=1,max=7,dive,min=0,max=6"` // 0=Пн..6=Вс
	WorkStart string `json:"work_start" validate:"required"`                           // "09:00"
	WorkEnd   string `json:"work_end" validate:"required"`                             // "18:00"
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateCalendarRequest) ToServiceRequest(actor domain.Actor) *models.UpdateCalendarRequest {
	return &models.UpdateCalendarRequest{
		Actor:     actor,
		WorkDays:  r.WorkDays,
		WorkStart: r.WorkStart,
		WorkEnd:   r.WorkEnd,
	}
}
