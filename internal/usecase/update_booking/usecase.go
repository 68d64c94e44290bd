package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/catalog"
)

// UseCase use case для изменения бронирования: смена статуса и редактирование услуг
type UseCase struct {
	bookingRepo      BookingRepository
	photographerRepo PhotographerRepository
	catalogRepo      CatalogRepository
	userRepo         UserRepository
	notifier         Notifier
	metrics          Metrics
	txManager        TransactionManager
	discountPolicy   domain.DiscountPolicy
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	photographerRepo PhotographerRepository,
	catalogRepo CatalogRepository,
	userRepo UserRepository,
	notifier Notifier,
	metrics Metrics,
	txManager TransactionManager,
	discountPolicy domain.DiscountPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		photographerRepo: photographerRepo,
		catalogRepo:      catalogRepo,
		userRepo:         userRepo,
		notifier:         notifier,
		metrics:          metrics,
		txManager:        txManager,
		discountPolicy:   discountPolicy,
		logger:           logger,
	}
}

// Execute выполняет use case изменения бронирования.
// Строка бронирования блокируется на всё время транзакции; побочные эффекты
// завершения (скидка владельцу) выполняются в той же транзакции, письмо гостю - после коммита.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d, user=%d, role=%s, status=%v",
		req.BookingID, req.Actor.UserID, req.Actor.Role, req.Status)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var (
		result       *domain.Booking
		fromStatus   domain.BookingStatus
		transitioned bool
		notifyGuest  bool
	)

	// 2. Все изменения в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !req.Actor.CanView(booking) {
			uc.logger.Warn("UpdateBooking: user=%d has no access to booking id=%d", req.Actor.UserID, booking.ID)
			return ErrPermissionDenied
		}
		fromStatus = booking.Status

		// 2.2. Редактирование услуг
		if hasEdits(req) {
			if err := uc.applyEdits(txCtx, booking, req); err != nil {
				return err
			}
		}

		// 2.3. Смена статуса
		if req.Status != nil {
			outcome, err := domain.CheckTransition(booking, *req.Status, req.Actor)
			if err != nil {
				uc.logger.Warn("UpdateBooking: transition of booking id=%d rejected: %v", booking.ID, err)
				return mapDomainError(err)
			}

			if outcome.Noop {
				uc.logger.Info("UpdateBooking: booking id=%d already %s", booking.ID, booking.Status)
			} else {
				if err := uc.applyTransition(txCtx, booking, *req.Status, outcome, req); err != nil {
					return err
				}
				transitioned = true
				notifyGuest = outcome.Completes && booking.IsGuest()
			}
		}

		// 2.4. Перечитываем бронирование для ответа
		updated, err := uc.bookingRepo.GetByID(txCtx, booking.ID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to reload booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 3. После коммита: метрики и письмо гостю
	if transitioned {
		uc.metrics.ObserveTransition(string(fromStatus), string(result.Status))
		uc.logger.Info("UpdateBooking: booking id=%d moved %s -> %s", result.ID, fromStatus, result.Status)
	}
	if notifyGuest {
		uc.notifier.SendResultsAsync(result, "")
	}

	return &Response{Booking: result}, nil
}

// applyTransition записывает новый статус и выполняет побочные эффекты перехода
func (uc *UseCase) applyTransition(
	ctx context.Context,
	booking *domain.Booking,
	to domain.BookingStatus,
	outcome domain.TransitionOutcome,
	req *Request,
) error {
	if outcome.Cancels {
		if err := uc.bookingRepo.Cancel(ctx, booking.ID, req.Actor.Role, req.CancellationReason); err != nil {
			uc.logger.Error("UpdateBooking: failed to cancel booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}
		return nil
	}

	if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, to); err != nil {
		uc.logger.Error("UpdateBooking: failed to update status of booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	// Скидка начисляется только зарегистрированному владельцу
	if outcome.Completes && booking.UserID != nil {
		owner, err := uc.userRepo.GetByID(ctx, *booking.UserID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get owner id=%d: %v", *booking.UserID, err)
			return fmt.Errorf("%w: failed to get owner: %v", ErrInternal, err)
		}

		discount := uc.discountPolicy.Accrue(owner.Discount)
		if err := uc.userRepo.UpdateDiscount(ctx, owner.ID, discount); err != nil {
			uc.logger.Error("UpdateBooking: failed to update discount of user id=%d: %v", owner.ID, err)
			return fmt.Errorf("%w: failed to update discount: %v", ErrInternal, err)
		}
		uc.logger.Info("UpdateBooking: discount of user id=%d is now %s%%", owner.ID, discount)
	}

	booking.Status = to
	return nil
}

// applyEdits меняет услугу и/или доп. услуги и пересчитывает цену
func (uc *UseCase) applyEdits(ctx context.Context, booking *domain.Booking, req *Request) error {
	if err := domain.CanEdit(booking, req.Actor); err != nil {
		uc.logger.Warn("UpdateBooking: edit of booking id=%d rejected: %v", booking.ID, err)
		return mapDomainError(err)
	}

	serviceID := booking.ServiceID
	if req.ServiceID != nil {
		serviceID = *req.ServiceID
	}

	service, err := uc.catalogRepo.GetServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("UpdateBooking: service id=%d not found", serviceID)
			return ErrServiceNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get service id=%d: %v", serviceID, err)
		return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Смена услуги меняет длительность: бронирование должно поместиться на прежнем месте
	if service.ID != booking.ServiceID {
		if err := uc.reschedule(ctx, booking, service); err != nil {
			return err
		}
	}

	ids := booking.AdditionalServiceIDs
	if req.AdditionalServiceIDs != nil {
		ids = *req.AdditionalServiceIDs
	}

	additional, err := uc.catalogRepo.GetAdditionalServicesByIDs(ctx, ids)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrAdditionalServiceNotFound) {
			uc.logger.Warn("UpdateBooking: additional services %v not found", ids)
			return ErrAdditionalServiceNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get additional services: %v", err)
		return fmt.Errorf("%w: failed to get additional services: %v", ErrInternal, err)
	}

	// Гость платит без скидки
	var owner *domain.User
	if booking.UserID != nil {
		owner, err = uc.userRepo.GetByID(ctx, *booking.UserID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get owner id=%d: %v", *booking.UserID, err)
			return fmt.Errorf("%w: failed to get owner: %v", ErrInternal, err)
		}
	}

	booking.AdditionalServiceIDs = make([]int64, 0, len(additional))
	for _, item := range additional {
		booking.AdditionalServiceIDs = append(booking.AdditionalServiceIDs, item.ID)
	}
	booking.Price = domain.PriceFor(service, additional, owner)

	if err := uc.bookingRepo.UpdateDetails(ctx, booking); err != nil {
		uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateBooking: booking id=%d now service=%d, extras=%v, price=%s",
		booking.ID, booking.ServiceID, booking.AdditionalServiceIDs, booking.Price)
	return nil
}

// reschedule проверяет, что бронирование с новой длительностью помещается в календарь
func (uc *UseCase) reschedule(ctx context.Context, booking *domain.Booking, service *domain.Service) error {
	photographer, err := uc.photographerRepo.GetByID(ctx, booking.PhotographerID)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to get photographer id=%d: %v", booking.PhotographerID, err)
		return fmt.Errorf("%w: failed to get photographer: %v", ErrInternal, err)
	}

	if !photographer.Offers(service.ID) {
		uc.logger.Warn("UpdateBooking: photographer id=%d does not offer service id=%d", photographer.ID, service.ID)
		return ErrServiceNotOffered
	}

	date := booking.Date
	existing, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		PhotographerID:  &photographer.ID,
		StartDate:       &date,
		EndDate:         &date,
		IncludeInactive: false,
	})
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
		return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if ok, reason := domain.ValidateReschedule(photographer.Calendar, booking, service.DurationMinutes, existing); !ok {
		uc.logger.Warn("UpdateBooking: booking id=%d cannot take service id=%d: %s", booking.ID, service.ID, reason)
		return reasonErrors[reason]
	}

	endTime, err := booking.StartTime.AddMinutes(service.DurationMinutes)
	if err != nil {
		return fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
	}

	booking.ServiceID = service.ID
	booking.EndTime = endTime
	return nil
}
