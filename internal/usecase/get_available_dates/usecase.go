package get_available_dates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/catalog"
	photographerRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/photographer"
)

// UseCase use case для получения дат, на которые есть свободные слоты
type UseCase struct {
	bookingRepo      BookingRepository
	photographerRepo PhotographerRepository
	catalogRepo      CatalogRepository
	rules            domain.SlotRules
	horizonDays      int
	defaultDuration  int
	location         *time.Location
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case.
// Даты ищутся в диапазоне [сегодня, сегодня+horizonDays].
func NewUseCase(
	bookingRepo BookingRepository,
	photographerRepo PhotographerRepository,
	catalogRepo CatalogRepository,
	rules domain.SlotRules,
	horizonDays int,
	defaultDuration int,
	location *time.Location,
	logger Logger,
) *UseCase {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultBookingHorizonDays
	}
	if defaultDuration <= 0 {
		defaultDuration = domain.DefaultServiceDurationMinutes
	}
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		bookingRepo:      bookingRepo,
		photographerRepo: photographerRepo,
		catalogRepo:      catalogRepo,
		rules:            rules,
		horizonDays:      horizonDays,
		defaultDuration:  defaultDuration,
		location:         location,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: photographer=%d, service=%v", req.PhotographerID, req.ServiceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время и диапазон дат
	now := uc.timeProvider.Now().In(uc.location)
	from := domain.DateOnly(now)
	to := from.AddDate(0, 0, uc.horizonDays)

	// 3. Получаем фотографа
	photographer, err := uc.photographerRepo.GetByID(ctx, req.PhotographerID)
	if err != nil {
		if errors.Is(err, photographerRepo.ErrPhotographerNotFound) {
			uc.logger.Warn("GetAvailableDates: photographer id=%d not found", req.PhotographerID)
			return nil, ErrPhotographerNotFound
		}
		uc.logger.Error("GetAvailableDates: failed to get photographer id=%d: %v", req.PhotographerID, err)
		return nil, fmt.Errorf("%w: failed to get photographer: %v", ErrInternal, err)
	}

	// 4. Определяем длительность
	duration := uc.defaultDuration
	if req.ServiceID != nil {
		service, err := uc.catalogRepo.GetServiceByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetAvailableDates: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetAvailableDates: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if !photographer.Offers(service.ID) {
			uc.logger.Info("GetAvailableDates: photographer=%d does not offer service=%d", photographer.ID, service.ID)
			return &Response{Dates: []time.Time{}}, nil
		}
		duration = service.DurationMinutes
	}

	// 5. Все активные бронирования диапазона одним запросом
	bookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		PhotographerID:  &photographer.ID,
		StartDate:       &from,
		EndDate:         &to,
		IncludeInactive: false,
	})
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	byDate := groupByDate(bookings)

	// 6. Дата доступна, если на неё есть хотя бы один слот
	dates := make([]time.Time, 0)
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		if !photographer.Calendar.IsWorkingDay(date) {
			continue
		}
		slots := domain.GenerateSlots(
			photographer.Calendar, duration, date, byDate[date.Format(domain.DateFormat)], now, uc.rules,
		)
		for range slots {
			dates = append(dates, date)
			break
		}
	}

	uc.logger.Info("GetAvailableDates: found %d available dates for photographer=%d", len(dates), photographer.ID)

	return &Response{Dates: dates}, nil
}

func groupByDate(bookings []*domain.Booking) map[string][]*domain.Booking {
	result := make(map[string][]*domain.Booking)
	for _, b := range bookings {
		key := b.Date.Format(domain.DateFormat)
		result[key] = append(result[key], b)
	}
	return result
}
