package get_available_dates

import (
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	getAvailableDates "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	AvailableDates []string `json:"available_dates"` // ["2025-10-15", ...]
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]string, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = d.Format(domain.DateFormat)
	}
	return &AvailableDatesResponse{AvailableDates: dates}
}
