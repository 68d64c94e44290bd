package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Видеть бронирование могут его владелец, фотограф бронирования и администратор.
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actor.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !actor.CanView(booking) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// ListMy бронирования, оформленные на текущего пользователя
func (s *Service) ListMy(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := toFilter(req)
	if err != nil {
		s.logger.Warn("ListMy: invalid filter for user=%d: %v", req.Actor.UserID, err)
		return nil, err
	}
	filter.UserID = &req.Actor.UserID

	return s.list(ctx, "ListMy", filter)
}

// ListPhotographer бронирования, назначенные на профиль текущего фотографа
func (s *Service) ListPhotographer(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	if req.Actor.Role != domain.RolePhotographer || req.Actor.PhotographerID == nil {
		s.logger.Warn("ListPhotographer: user=%d is not a photographer", req.Actor.UserID)
		return nil, ErrAccessDenied
	}

	filter, err := toFilter(req)
	if err != nil {
		s.logger.Warn("ListPhotographer: invalid filter for user=%d: %v", req.Actor.UserID, err)
		return nil, err
	}
	filter.PhotographerID = req.Actor.PhotographerID

	return s.list(ctx, "ListPhotographer", filter)
}

// ListAll все бронирования; только для администратора
func (s *Service) ListAll(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	if !req.Actor.IsAdmin() {
		s.logger.Warn("ListAll: user=%d is not an admin", req.Actor.UserID)
		return nil, ErrAccessDenied
	}

	filter, err := toFilter(req)
	if err != nil {
		s.logger.Warn("ListAll: invalid filter: %v", err)
		return nil, err
	}

	return s.list(ctx, "ListAll", filter)
}

func (s *Service) list(ctx context.Context, op string, filter domain.BookingsFilter) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: fetched %d bookings", op, len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

func toFilter(req *models.ListBookingsRequest) (domain.BookingsFilter, error) {
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return domain.BookingsFilter{}, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	// Фильтр по статусу отмены показывает и неактивные бронирования
	includeInactive := req.IncludeInactive
	if req.Status != nil && *req.Status == domain.StatusCancelled {
		includeInactive = true
	}

	return domain.BookingsFilter{
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Status:          req.Status,
		IncludeInactive: includeInactive,
	}, nil
}
