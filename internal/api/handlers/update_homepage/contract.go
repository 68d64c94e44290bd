package update_homepage

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/service/homepage/models"
)

type HomePageService interface {
	Update(ctx context.Context, req *models.UpdateContentRequest) (*models.ContentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
