package send_results_email

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StudioBooking/internal/service/notifications"
)

// UseCase use case для ручной отправки результатов на email
type UseCase struct {
	bookingRepo BookingRepository
	notifier    Notifier
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute выполняет use case отправки результатов.
// В отличие от автоматической отправки при завершении, ошибка SMTP возвращается вызывающему.
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("SendResultsEmail: booking=%d, user=%d", req.BookingID, req.Actor.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SendResultsEmail: validation failed: %v", err)
		return err
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("SendResultsEmail: booking id=%d not found", req.BookingID)
			return ErrBookingNotFound
		}
		uc.logger.Error("SendResultsEmail: failed to get booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Отправлять может фотограф бронирования или администратор
	if !req.Actor.IsAdmin() && !req.Actor.OwnsAsPhotographer(booking) {
		uc.logger.Warn("SendResultsEmail: user=%d cannot send results of booking id=%d", req.Actor.UserID, booking.ID)
		return ErrPermissionDenied
	}

	// 4. Отправляем
	if err := uc.notifier.SendResults(ctx, booking, req.Email); err != nil {
		switch {
		case errors.Is(err, notifications.ErrNoResults):
			uc.logger.Warn("SendResultsEmail: booking id=%d has no results", booking.ID)
			return ErrNoResults
		case errors.Is(err, notifications.ErrNoRecipient):
			uc.logger.Warn("SendResultsEmail: booking id=%d has no recipient", booking.ID)
			return ErrNoRecipient
		default:
			uc.logger.Error("SendResultsEmail: failed to send results of booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: %v", ErrSendFailed, err)
		}
	}

	uc.logger.Info("SendResultsEmail: results of booking id=%d sent", booking.ID)
	return nil
}
