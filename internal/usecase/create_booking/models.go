package create_booking

import (
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Actor                *domain.Actor        // Авторизованный пользователь; nil для гостя
	Guest                *domain.GuestContact // Контакты гостя; игнорируются для авторизованного
	PhotographerID       int64                // ID фотографа
	ServiceID            int64                // ID услуги
	Date                 time.Time            // Дата бронирования (без времени)
	StartTime            types.TimeString     // Время начала (например, "10:00")
	AdditionalServiceIDs []int64              // Дополнительные услуги
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
