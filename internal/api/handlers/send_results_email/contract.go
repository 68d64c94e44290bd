package send_results_email

import (
	"context"

	sendResultsEmail "github.com/m04kA/SMC-StudioBooking/internal/usecase/send_results_email"
)

type SendResultsEmailUseCase interface {
	Execute(ctx context.Context, req *sendResultsEmail.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
