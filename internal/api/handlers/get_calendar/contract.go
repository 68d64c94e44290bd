package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/service/calendar/models"
)

type CalendarService interface {
	Get(ctx context.Context, photographerID int64) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
