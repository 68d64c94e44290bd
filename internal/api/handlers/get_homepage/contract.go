package get_homepage

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/service/homepage/models"
)

type HomePageService interface {
	Get(ctx context.Context) (*models.ContentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
