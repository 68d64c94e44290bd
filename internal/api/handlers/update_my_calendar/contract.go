package update_my_calendar

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/service/calendar/models"
)

type CalendarService interface {
	UpdateMine(ctx context.Context, req *models.UpdateCalendarRequest) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
