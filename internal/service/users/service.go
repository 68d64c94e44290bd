package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	userRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-StudioBooking/internal/service/users/models"
)

// Service сервис профилей пользователей
type Service struct {
	userRepo  UserRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		userRepo:  userRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Me профиль текущего пользователя вместе с накопленной скидкой
func (s *Service) Me(ctx context.Context, actor domain.Actor) (*models.UserResponse, error) {
	user, err := s.getUser(ctx, "Me", actor.UserID)
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainUser(user)
	resp.PhotographerID = actor.PhotographerID
	return resp, nil
}

// ResetDiscount обнуляет персональную скидку пользователя; только для администратора
func (s *Service) ResetDiscount(ctx context.Context, actor domain.Actor, userID int64) (*models.UserResponse, error) {
	s.logger.Info("ResetDiscount: user=%d by admin=%d", userID, actor.UserID)

	if !actor.IsAdmin() {
		s.logger.Warn("ResetDiscount: user=%d is not an admin", actor.UserID)
		return nil, ErrAccessDenied
	}

	var result *domain.User
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		user, err := s.getUser(txCtx, "ResetDiscount", userID)
		if err != nil {
			return err
		}

		if err := s.userRepo.UpdateDiscount(txCtx, userID, decimal.Zero); err != nil {
			s.logger.Error("ResetDiscount: failed to update discount of user=%d: %v", userID, err)
			return fmt.Errorf("%w: ResetDiscount - repository error: %v", ErrInternal, err)
		}

		user.Discount = decimal.Zero
		result = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ResetDiscount: discount of user=%d reset", userID)
	return models.FromDomainUser(result), nil
}

func (s *Service) getUser(ctx context.Context, op string, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user id=%d not found", op, id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("%s: repository error for user id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return user, nil
}
