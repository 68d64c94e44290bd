package calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	photographerRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/photographer"
	"github.com/m04kA/SMC-StudioBooking/internal/service/calendar/models"
)

// Service сервис рабочих календарей фотографов
type Service struct {
	photographerRepo PhotographerRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса календарей
func NewService(photographerRepo PhotographerRepository, logger Logger) *Service {
	return &Service{
		photographerRepo: photographerRepo,
		logger:           logger,
	}
}

// Get возвращает рабочий календарь фотографа
func (s *Service) Get(ctx context.Context, photographerID int64) (*models.CalendarResponse, error) {
	photographer, err := s.photographerRepo.GetByID(ctx, photographerID)
	if err != nil {
		if errors.Is(err, photographerRepo.ErrPhotographerNotFound) {
			s.logger.Warn("GetCalendar: photographer id=%d not found", photographerID)
			return nil, ErrPhotographerNotFound
		}
		s.logger.Error("GetCalendar: repository error for photographer id=%d: %v", photographerID, err)
		return nil, fmt.Errorf("%w: GetCalendar - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPhotographer(photographer), nil
}

// UpdateMine заменяет рабочий календарь текущего фотографа.
// Уже созданные бронирования не пересматриваются.
func (s *Service) UpdateMine(ctx context.Context, req *models.UpdateCalendarRequest) (*models.CalendarResponse, error) {
	s.logger.Info("UpdateCalendar: user=%d", req.Actor.UserID)

	// 1. Только фотограф со своим профилем
	if req.Actor.PhotographerID == nil {
		s.logger.Warn("UpdateCalendar: user=%d has no photographer profile", req.Actor.UserID)
		return nil, ErrAccessDenied
	}
	photographerID := *req.Actor.PhotographerID

	// 2. Валидация календаря
	cal, err := req.ToDomainCalendar()
	if err != nil {
		s.logger.Warn("UpdateCalendar: invalid time for photographer id=%d: %v", photographerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidCalendar, err)
	}
	if err := cal.Validate(); err != nil {
		s.logger.Warn("UpdateCalendar: validation failed for photographer id=%d: %v", photographerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidCalendar, err)
	}

	// 3. Сохраняем
	if err := s.photographerRepo.UpdateCalendar(ctx, photographerID, cal); err != nil {
		if errors.Is(err, photographerRepo.ErrPhotographerNotFound) {
			s.logger.Warn("UpdateCalendar: photographer id=%d not found", photographerID)
			return nil, ErrPhotographerNotFound
		}
		s.logger.Error("UpdateCalendar: repository error for photographer id=%d: %v", photographerID, err)
		return nil, fmt.Errorf("%w: UpdateCalendar - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCalendar: updated calendar of photographer id=%d", photographerID)
	return models.FromDomainPhotographer(&domain.Photographer{ID: photographerID, Calendar: cal}), nil
}
