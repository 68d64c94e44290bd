package update_my_photographer

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/service/photographers/models"
)

type PhotographerService interface {
	UpdateMe(ctx context.Context, req *models.UpdateProfileRequest) (*models.PhotographerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
