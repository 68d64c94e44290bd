package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	PhotographerID int64     // ID фотографа
	ServiceID      int64     // ID услуги (определяет длительность)
	Date           time.Time // Дата (без времени)
}

// Response модель ответа со списком свободных стартов
type Response struct {
	Slots []types.TimeString // Времена начала в порядке возрастания
}
