package send_results_email

import "github.com/m04kA/SMC-StudioBooking/internal/domain"

// Request модель запроса на отправку результатов
type Request struct {
	Actor     domain.Actor
	BookingID int64
	Email     string // Получатель; пусто - гостевой email бронирования
}
