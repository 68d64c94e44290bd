package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/catalog"
	photographerRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/photographer"
	userRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-StudioBooking/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	photographerRepo PhotographerRepository
	catalogRepo      CatalogRepository
	userRepo         UserRepository
	txManager        TransactionManager
	rules            domain.SlotRules
	location         *time.Location
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	photographerRepo PhotographerRepository,
	catalogRepo CatalogRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	rules domain.SlotRules,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		bookingRepo:      bookingRepo,
		photographerRepo: photographerRepo,
		catalogRepo:      catalogRepo,
		userRepo:         userRepo,
		txManager:        txManager,
		rules:            rules,
		location:         location,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка слота и вставка идут в одной сериализуемой транзакции
// с блокировкой фотографа и его бронирований на дату.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: photographer=%d, service=%d, date=%s, time=%s, guest=%t",
		req.PhotographerID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.Actor == nil)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время в часовом поясе студии
	now := uc.timeProvider.Now().In(uc.location)
	date := domain.DateOnly(req.Date)

	// 3. Владелец: зарегистрированный пользователь или гость с незанятым email
	var owner *domain.User
	if req.Actor != nil {
		user, err := uc.userRepo.GetByID(ctx, req.Actor.UserID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				uc.logger.Warn("CreateBooking: user id=%d from token not found", req.Actor.UserID)
				return nil, fmt.Errorf("%w: user %d not found", ErrInvalidInput, req.Actor.UserID)
			}
			uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.Actor.UserID, err)
			return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
		}
		owner = user
	} else {
		exists, err := uc.userRepo.ExistsByEmail(ctx, req.Guest.Email)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check guest email: %v", err)
			return nil, fmt.Errorf("%w: failed to check guest email: %v", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("CreateBooking: guest email %s belongs to a registered user", req.Guest.Email)
			return nil, ErrEmailRegistered
		}
	}

	// 4. Получаем услугу
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Получаем дополнительные услуги
	additional, err := uc.catalogRepo.GetAdditionalServicesByIDs(ctx, req.AdditionalServiceIDs)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrAdditionalServiceNotFound) {
			uc.logger.Warn("CreateBooking: additional services %v not found: %v", req.AdditionalServiceIDs, err)
			return nil, ErrAdditionalServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get additional services: %v", err)
		return nil, fmt.Errorf("%w: failed to get additional services: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Блокируем фотографа
		photographer, err := uc.photographerRepo.GetByID(txCtx, req.PhotographerID)
		if err != nil {
			if errors.Is(err, photographerRepo.ErrPhotographerNotFound) {
				uc.logger.Warn("CreateBooking: photographer id=%d not found", req.PhotographerID)
				return ErrPhotographerNotFound
			}
			uc.logger.Error("CreateBooking: failed to get photographer id=%d: %v", req.PhotographerID, err)
			return fmt.Errorf("%w: failed to get photographer: %v", ErrInternal, err)
		}

		if !photographer.Offers(service.ID) {
			uc.logger.Warn("CreateBooking: photographer id=%d does not offer service id=%d", photographer.ID, service.ID)
			return ErrServiceNotOffered
		}

		// 6.2. Получаем активные бронирования фотографа на дату с блокировкой (FOR UPDATE)
		filter := domain.BookingsFilter{
			PhotographerID:  &photographer.ID,
			StartDate:       &date,
			EndDate:         &date,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.3. Проверяем слот
		ok, reason := domain.ValidateSlot(
			photographer.Calendar, service.DurationMinutes, date, req.StartTime, bookings, now, uc.rules,
		)
		if !ok {
			uc.logger.Warn("CreateBooking: slot %s %s rejected: %s", date.Format(domain.DateFormat), req.StartTime, reason)
			return reasonErrors[reason]
		}

		endTime, err := req.StartTime.AddMinutes(service.DurationMinutes)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to compute end time: %v", err)
			return fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}

		// 6.4. Создаем бронирование
		booking := &domain.Booking{
			PhotographerID:       photographer.ID,
			ServiceID:            service.ID,
			Date:                 date,
			StartTime:            req.StartTime,
			EndTime:              endTime,
			Status:               domain.StatusPending,
			Price:                domain.PriceFor(service, additional, owner),
			AdditionalServiceIDs: additionalIDs(additional),
		}
		if owner != nil {
			booking.UserID = ptr.Ptr(owner.ID)
		} else {
			booking.Guest = req.Guest
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotConflict) {
				uc.logger.Warn("CreateBooking: slot taken concurrently: %v", err)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, price=%s", result.ID, result.Price)

	return &Response{Booking: result}, nil
}

func additionalIDs(items []*domain.AdditionalService) []int64 {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}
