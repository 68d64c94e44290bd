package upload_results

import (
	"context"

	uploadResults "github.com/m04kA/SMC-StudioBooking/internal/usecase/upload_results"
)

type UploadResultsUseCase interface {
	Execute(ctx context.Context, req *uploadResults.Request) (*uploadResults.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
