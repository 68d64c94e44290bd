package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{catalogRepo: catalogRepo, logger: logger}
}

// List возвращает все услуги и дополнительные услуги
func (s *Service) List(ctx context.Context) (*models.CatalogResponse, error) {
	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListCatalog: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: ListCatalog - services: %v", ErrInternal, err)
	}

	additional, err := s.catalogRepo.ListAdditionalServices(ctx)
	if err != nil {
		s.logger.Error("ListCatalog: failed to list additional services: %v", err)
		return nil, fmt.Errorf("%w: ListCatalog - additional services: %v", ErrInternal, err)
	}

	return models.FromDomain(services, additional), nil
}
