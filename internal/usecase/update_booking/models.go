package update_booking

import "github.com/m04kA/SMC-StudioBooking/internal/domain"

// Request модель запроса на изменение бронирования.
// Поля со значением nil не меняются.
type Request struct {
	Actor                domain.Actor          // Кто меняет бронирование
	BookingID            int64                 // ID бронирования
	Status               *domain.BookingStatus // Новый статус
	CancellationReason   *string               // Причина отмены; учитывается только при отмене
	ServiceID            *int64                // Новая услуга
	AdditionalServiceIDs *[]int64              // Новый набор доп. услуг; пустой список очищает
}

// Response модель ответа с бронированием после изменения
type Response struct {
	Booking *domain.Booking
}
