package get_available_slots

import (
	"time"

	getAvailableSlots "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Slots []string `json:"slots"` // ["09:00", "09:15", ...]
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(photographerID, serviceID int64, date time.Time) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		PhotographerID: photographerID,
		ServiceID:      serviceID,
		Date:           date,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = s.String()
	}
	return &AvailableSlotsResponse{Slots: slots}
}
