package portfolio

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/filestore"
	catalogRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/catalog"
	portfolioRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/portfolio"
	"github.com/m04kA/SMC-StudioBooking/internal/service/portfolio/models"
)

// Service сервис портфолио фотографов
type Service struct {
	portfolioRepo PortfolioRepository
	catalogRepo   CatalogRepository
	fileStore     FileStore
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса портфолио
func NewService(
	portfolioRepo PortfolioRepository,
	catalogRepo CatalogRepository,
	fileStore FileStore,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		portfolioRepo: portfolioRepo,
		catalogRepo:   catalogRepo,
		fileStore:     fileStore,
		txManager:     txManager,
		logger:        logger,
	}
}

// List публичная галерея с фильтром по фотографу и услуге
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	return s.list(ctx, "ListPortfolio", domain.PortfolioFilter{
		PhotographerID: req.PhotographerID,
		ServiceID:      req.ServiceID,
	})
}

// ListMine работы текущего фотографа
func (s *Service) ListMine(ctx context.Context, actor domain.Actor) (*models.ListResponse, error) {
	if actor.PhotographerID == nil {
		s.logger.Warn("ListMyPortfolio: user=%d has no photographer profile", actor.UserID)
		return nil, ErrAccessDenied
	}
	return s.list(ctx, "ListMyPortfolio", domain.PortfolioFilter{PhotographerID: actor.PhotographerID})
}

// Create сохраняет изображение и добавляет работу в портфолио текущего фотографа.
// Если запись в БД не удалась, изображение удаляется.
func (s *Service) Create(ctx context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("CreatePortfolioItem: user=%d, service=%d", req.Actor.UserID, req.ServiceID)

	if req.Actor.PhotographerID == nil {
		s.logger.Warn("CreatePortfolioItem: user=%d has no photographer profile", req.Actor.UserID)
		return nil, ErrAccessDenied
	}
	if req.Image == nil {
		return nil, ErrImageRequired
	}
	if err := s.checkService(ctx, "CreatePortfolioItem", req.ServiceID); err != nil {
		return nil, err
	}

	url, err := s.saveImage("CreatePortfolioItem", req.Image)
	if err != nil {
		return nil, err
	}

	item, err := s.portfolioRepo.Create(ctx, &domain.PortfolioItem{
		PhotographerID: *req.Actor.PhotographerID,
		ServiceID:      req.ServiceID,
		Image:          url,
		Description:    strings.TrimSpace(req.Description),
	})
	if err != nil {
		s.removeImage("CreatePortfolioItem", url)
		s.logger.Error("CreatePortfolioItem: repository error for photographer id=%d: %v", *req.Actor.PhotographerID, err)
		return nil, fmt.Errorf("%w: CreatePortfolioItem - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePortfolioItem: created item id=%d for photographer id=%d", item.ID, item.PhotographerID)
	return models.FromDomainItem(item), nil
}

// Update меняет услугу, описание или изображение работы.
// Менять работу может её автор или администратор; старое изображение удаляется после сохранения.
func (s *Service) Update(ctx context.Context, req *models.UpdateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("UpdatePortfolioItem: item=%d, user=%d", req.ID, req.Actor.UserID)

	if req.ServiceID != nil {
		if err := s.checkService(ctx, "UpdatePortfolioItem", *req.ServiceID); err != nil {
			return nil, err
		}
	}

	var newImage string
	if req.Image != nil {
		url, err := s.saveImage("UpdatePortfolioItem", req.Image)
		if err != nil {
			return nil, err
		}
		newImage = url
	}

	var (
		result   *domain.PortfolioItem
		oldImage string
	)
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		item, err := s.getManaged(txCtx, "UpdatePortfolioItem", req.Actor, req.ID)
		if err != nil {
			return err
		}

		if req.ServiceID != nil {
			item.ServiceID = *req.ServiceID
		}
		if req.Description != nil {
			item.Description = strings.TrimSpace(*req.Description)
		}
		if newImage != "" {
			oldImage = item.Image
			item.Image = newImage
		}

		if err := s.portfolioRepo.Update(txCtx, item); err != nil {
			if errors.Is(err, portfolioRepo.ErrItemNotFound) {
				return ErrItemNotFound
			}
			s.logger.Error("UpdatePortfolioItem: failed to update item id=%d: %v", item.ID, err)
			return fmt.Errorf("%w: UpdatePortfolioItem - repository error: %v", ErrInternal, err)
		}
		result = item
		return nil
	})
	if err != nil {
		if newImage != "" {
			s.removeImage("UpdatePortfolioItem", newImage)
		}
		return nil, err
	}

	if oldImage != "" {
		s.removeImage("UpdatePortfolioItem", oldImage)
	}

	s.logger.Info("UpdatePortfolioItem: updated item id=%d", result.ID)
	return models.FromDomainItem(result), nil
}

// Delete удаляет работу и её изображение. Удалять может автор или администратор.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	s.logger.Info("DeletePortfolioItem: item=%d, user=%d", id, actor.UserID)

	var image string
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		item, err := s.getManaged(txCtx, "DeletePortfolioItem", actor, id)
		if err != nil {
			return err
		}

		if err := s.portfolioRepo.Delete(txCtx, item.ID); err != nil {
			if errors.Is(err, portfolioRepo.ErrItemNotFound) {
				return ErrItemNotFound
			}
			s.logger.Error("DeletePortfolioItem: failed to delete item id=%d: %v", item.ID, err)
			return fmt.Errorf("%w: DeletePortfolioItem - repository error: %v", ErrInternal, err)
		}
		image = item.Image
		return nil
	})
	if err != nil {
		return err
	}

	s.removeImage("DeletePortfolioItem", image)
	s.logger.Info("DeletePortfolioItem: deleted item id=%d", id)
	return nil
}

func (s *Service) list(ctx context.Context, op string, filter domain.PortfolioFilter) (*models.ListResponse, error) {
	items, err := s.portfolioRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return models.FromDomainItems(items), nil
}

// getManaged загружает работу и проверяет, что актор может её менять
func (s *Service) getManaged(ctx context.Context, op string, actor domain.Actor, id int64) (*domain.PortfolioItem, error) {
	item, err := s.portfolioRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, portfolioRepo.ErrItemNotFound) {
			s.logger.Warn("%s: item id=%d not found", op, id)
			return nil, ErrItemNotFound
		}
		s.logger.Error("%s: failed to get item id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	if !item.CanManage(actor) {
		s.logger.Warn("%s: user=%d is not allowed to change item id=%d", op, actor.UserID, id)
		return nil, ErrPermissionDenied
	}
	return item, nil
}

func (s *Service) checkService(ctx context.Context, op string, id int64) error {
	if _, err := s.catalogRepo.GetServiceByID(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("%s: service id=%d not found", op, id)
			return fmt.Errorf("%w: id=%d", ErrUnknownService, id)
		}
		s.logger.Error("%s: failed to get service id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - catalog error: %v", ErrInternal, op, err)
	}
	return nil
}

func (s *Service) saveImage(op string, fh *multipart.FileHeader) (string, error) {
	url, err := s.fileStore.Save(filestore.KindPortfolio, fh)
	if err != nil {
		switch {
		case errors.Is(err, filestore.ErrInvalidContentType), errors.Is(err, filestore.ErrEmptyFile):
			s.logger.Warn("%s: file %s rejected: %v", op, fh.Filename, err)
			return "", fmt.Errorf("%w: %s", ErrInvalidImage, fh.Filename)
		case errors.Is(err, filestore.ErrFileTooLarge):
			s.logger.Warn("%s: file %s too large: %v", op, fh.Filename, err)
			return "", fmt.Errorf("%w: %s", ErrImageTooLarge, fh.Filename)
		default:
			s.logger.Error("%s: failed to store file %s: %v", op, fh.Filename, err)
			return "", fmt.Errorf("%w: failed to store file: %v", ErrInternal, err)
		}
	}
	return url, nil
}

func (s *Service) removeImage(op, url string) {
	if err := s.fileStore.Remove(url); err != nil {
		s.logger.Warn("%s: failed to remove file %s: %v", op, url, err)
	}
}
