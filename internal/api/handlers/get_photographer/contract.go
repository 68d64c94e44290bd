package get_photographer

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/service/photographers/models"
)

type PhotographerService interface {
	Get(ctx context.Context, id int64) (*models.PhotographerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
