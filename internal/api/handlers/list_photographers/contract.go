package list_photographers

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/service/photographers/models"
)

type PhotographerService interface {
	List(ctx context.Context) (*models.PhotographerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
