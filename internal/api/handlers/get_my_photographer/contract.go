package get_my_photographer

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/photographers/models"
)

type PhotographerService interface {
	Me(ctx context.Context, actor domain.Actor) (*models.PhotographerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
