package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/catalog"
	photographerRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/photographer"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	photographerRepo PhotographerRepository
	catalogRepo      CatalogRepository
	rules            domain.SlotRules
	location         *time.Location
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case.
// location - часовой пояс студии, в нём определяется "сегодня".
func NewUseCase(
	bookingRepo BookingRepository,
	photographerRepo PhotographerRepository,
	catalogRepo CatalogRepository,
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
		rules:            rules,
		location:         location,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: photographer=%d, service=%d, date=%s",
		req.PhotographerID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время в часовом поясе студии
	now := uc.timeProvider.Now().In(uc.location)
	date := domain.DateOnly(req.Date)

	// 3. Получаем фотографа
	photographer, err := uc.photographerRepo.GetByID(ctx, req.PhotographerID)
	if err != nil {
		if errors.Is(err, photographerRepo.ErrPhotographerNotFound) {
			uc.logger.Warn("GetAvailableSlots: photographer id=%d not found", req.PhotographerID)
			return nil, ErrPhotographerNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get photographer id=%d: %v", req.PhotographerID, err)
		return nil, fmt.Errorf("%w: failed to get photographer: %v", ErrInternal, err)
	}

	// 4. Получаем услугу
	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Фотограф не работает в этот день или не оказывает услугу - слотов нет
	if !photographer.Calendar.IsWorkingDay(date) || !photographer.Offers(service.ID) {
		uc.logger.Info("GetAvailableSlots: no slots for photographer=%d on %s",
			req.PhotographerID, date.Format(domain.DateFormat))
		return &Response{Slots: []types.TimeString{}}, nil
	}

	// 6. Получаем активные бронирования фотографа на дату
	filter := domain.BookingsFilter{
		PhotographerID:  &photographer.ID,
		StartDate:       &date,
		EndDate:         &date,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Генерируем слоты
	slots := slices.Collect(domain.GenerateSlots(
		photographer.Calendar, service.DurationMinutes, date, bookings, now, uc.rules,
	))
	if slots == nil {
		slots = []types.TimeString{}
	}

	uc.logger.Info("GetAvailableSlots: found %d available slots", len(slots))

	return &Response{Slots: slots}, nil
}
