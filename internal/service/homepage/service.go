package homepage

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/homepage/models"
)

// Service сервис контента главной страницы
type Service struct {
	contentRepo ContentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса контента
func NewService(contentRepo ContentRepository, logger Logger) *Service {
	return &Service{
		contentRepo: contentRepo,
		logger:      logger,
	}
}

// Get возвращает контент главной страницы
func (s *Service) Get(ctx context.Context) (*models.ContentResponse, error) {
	content, err := s.contentRepo.Get(ctx)
	if err != nil {
		s.logger.Error("GetHomePage: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetHomePage - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainContent(content), nil
}

// Update меняет переданные поля контента. Доступно только администратору.
func (s *Service) Update(ctx context.Context, req *models.UpdateContentRequest) (*models.ContentResponse, error) {
	s.logger.Info("UpdateHomePage: user=%d", req.Actor.UserID)

	if !req.Actor.IsAdmin() {
		s.logger.Warn("UpdateHomePage: user=%d with role=%s is not admin", req.Actor.UserID, req.Actor.Role)
		return nil, ErrAccessDenied
	}

	current, err := s.contentRepo.Get(ctx)
	if err != nil {
		s.logger.Error("UpdateHomePage: failed to load content: %v", err)
		return nil, fmt.Errorf("%w: UpdateHomePage - repository error: %v", ErrInternal, err)
	}

	content := current.Clone()
	apply(&content, req)
	if strings.TrimSpace(content.Title) == "" || strings.TrimSpace(content.Description) == "" {
		s.logger.Warn("UpdateHomePage: empty title or description from user=%d", req.Actor.UserID)
		return nil, ErrInvalidContent
	}

	if err := s.contentRepo.Save(ctx, &content); err != nil {
		s.logger.Error("UpdateHomePage: failed to save content: %v", err)
		return nil, fmt.Errorf("%w: UpdateHomePage - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateHomePage: content updated by user=%d", req.Actor.UserID)
	return models.FromDomainContent(&content), nil
}

func apply(c *domain.HomePageContent, req *models.UpdateContentRequest) {
	if req.Title != nil {
		c.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		c.Description = strings.TrimSpace(*req.Description)
	}
	if req.ContactEmails != nil {
		c.ContactEmails = cleanList(*req.ContactEmails)
	}
	if req.ContactPhones != nil {
		c.ContactPhones = cleanList(*req.ContactPhones)
	}
	if req.ContactAddresses != nil {
		c.ContactAddresses = cleanList(*req.ContactAddresses)
	}
	if req.GuestPromoText != nil {
		c.GuestPromoText = strings.TrimSpace(*req.GuestPromoText)
	}
}

// cleanList обрезает пробелы и выбрасывает пустые строки
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
