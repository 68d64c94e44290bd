package get_available_dates

import "time"

// Request модель запроса на получение дат с хотя бы одним свободным слотом
type Request struct {
	PhotographerID int64  // ID фотографа
	ServiceID      *int64 // ID услуги; без неё используется длительность по умолчанию
}

// Response модель ответа
type Response struct {
	Dates []time.Time // Даты в порядке возрастания
}
