package photographers

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/catalog"
	photographerRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/photographer"
	"github.com/m04kA/SMC-StudioBooking/internal/service/photographers/models"
)

// Service сервис профилей фотографов
type Service struct {
	photographerRepo PhotographerRepository
	catalogRepo      CatalogRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса фотографов
func NewService(photographerRepo PhotographerRepository, catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		photographerRepo: photographerRepo,
		catalogRepo:      catalogRepo,
		logger:           logger,
	}
}

// List возвращает всех фотографов
func (s *Service) List(ctx context.Context) (*models.PhotographerListResponse, error) {
	profiles, err := s.photographerRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListPhotographers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPhotographers - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainProfiles(profiles), nil
}

// Get возвращает профиль фотографа по ID
func (s *Service) Get(ctx context.Context, id int64) (*models.PhotographerResponse, error) {
	profile, err := s.getProfile(ctx, "GetPhotographer", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainProfile(profile), nil
}

// Me возвращает профиль текущего фотографа
func (s *Service) Me(ctx context.Context, actor domain.Actor) (*models.PhotographerResponse, error) {
	if actor.PhotographerID == nil {
		s.logger.Warn("GetMyPhotographer: user=%d has no photographer profile", actor.UserID)
		return nil, ErrAccessDenied
	}
	return s.Get(ctx, *actor.PhotographerID)
}

// UpdateMe частично обновляет профиль текущего фотографа.
// Каждая услуга из нового списка должна существовать в каталоге.
func (s *Service) UpdateMe(ctx context.Context, req *models.UpdateProfileRequest) (*models.PhotographerResponse, error) {
	s.logger.Info("UpdateMyPhotographer: user=%d", req.Actor.UserID)

	if req.Actor.PhotographerID == nil {
		s.logger.Warn("UpdateMyPhotographer: user=%d has no photographer profile", req.Actor.UserID)
		return nil, ErrAccessDenied
	}
	photographerID := *req.Actor.PhotographerID

	upd := req.ToDomainUpdate()
	if upd.Bio != nil {
		bio := strings.TrimSpace(*upd.Bio)
		upd.Bio = &bio
	}
	if upd.Phone != nil {
		phone := strings.TrimSpace(*upd.Phone)
		upd.Phone = &phone
	}
	if upd.ServiceIDs != nil {
		ids := slices.Clone(*upd.ServiceIDs)
		slices.Sort(ids)
		ids = slices.Compact(ids)
		for _, id := range ids {
			if err := s.checkService(ctx, id); err != nil {
				return nil, err
			}
		}
		upd.ServiceIDs = &ids
	}

	if err := s.photographerRepo.UpdateProfile(ctx, photographerID, upd); err != nil {
		if errors.Is(err, photographerRepo.ErrPhotographerNotFound) {
			s.logger.Warn("UpdateMyPhotographer: photographer id=%d not found", photographerID)
			return nil, ErrPhotographerNotFound
		}
		s.logger.Error("UpdateMyPhotographer: repository error for photographer id=%d: %v", photographerID, err)
		return nil, fmt.Errorf("%w: UpdateMyPhotographer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateMyPhotographer: updated profile of photographer id=%d", photographerID)
	return s.Get(ctx, photographerID)
}

func (s *Service) getProfile(ctx context.Context, op string, id int64) (*domain.PhotographerProfile, error) {
	profile, err := s.photographerRepo.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, photographerRepo.ErrPhotographerNotFound) {
			s.logger.Warn("%s: photographer id=%d not found", op, id)
			return nil, ErrPhotographerNotFound
		}
		s.logger.Error("%s: repository error for photographer id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return profile, nil
}

func (s *Service) checkService(ctx context.Context, id int64) error {
	if _, err := s.catalogRepo.GetServiceByID(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateMyPhotographer: service id=%d not found", id)
			return fmt.Errorf("%w: id=%d", ErrUnknownService, id)
		}
		s.logger.Error("UpdateMyPhotographer: failed to get service id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateMyPhotographer - catalog error: %v", ErrInternal, err)
	}
	return nil
}
