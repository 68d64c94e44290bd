package models

import (
	"slices"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// UpdateCalendarRequest новый рабочий календарь фотографа
type UpdateCalendarRequest struct {
	Actor     domain.Actor
	WorkDays  []int
	WorkStart string
	WorkEnd   string
}

// ToDomainCalendar конвертирует запрос в domain.WorkCalendar
func (r *UpdateCalendarRequest) ToDomainCalendar() (domain.WorkCalendar, error) {
	start, err := types.NewTimeStringFromString(r.WorkStart)
	if err != nil {
		return domain.WorkCalendar{}, err
	}
	end, err := types.NewTimeStringFromString(r.WorkEnd)
	if err != nil {
		return domain.WorkCalendar{}, err
	}
	return domain.WorkCalendar{
		Days:  slices.Clone(r.WorkDays),
		Start: start,
		End:   end,
	}.Normalized(), nil
}

// CalendarResponse рабочий календарь фотографа
type CalendarResponse struct {
	PhotographerID int64  `json:"photographer_id"`
	WorkDays       []int  `json:"work_days"` // 0=Пн..6=Вс
	WorkStart      string `json:"work_start"`
	WorkEnd        string `json:"work_end"`
}

// FromDomainPhotographer конвертирует профиль фотографа в CalendarResponse
func FromDomainPhotographer(p *domain.Photographer) *CalendarResponse {
	days := p.Calendar.Days
	if days == nil {
		days = []int{}
	}
	return &CalendarResponse{
		PhotographerID: p.ID,
		WorkDays:       days,
		WorkStart:      p.Calendar.Start.String(),
		WorkEnd:        p.Calendar.End.String(),
	}
}
