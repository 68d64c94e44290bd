package notifications

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/mailer"
)

const defaultSendTimeout = 30 * time.Second

// Service отправка результатов фотосессии клиенту
type Service struct {
	mailer           Mailer
	photographerRepo PhotographerRepository
	userRepo         UserRepository
	baseURL          string
	timeout          time.Duration
	metrics          Metrics
	logger           Logger

	// runAsync запускает отложенную отправку; в тестах подменяется синхронным вызовом
	runAsync func(func())
	pending  sync.WaitGroup
	inFlight atomic.Int64
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(
	mailer Mailer,
	photographerRepo PhotographerRepository,
	userRepo UserRepository,
	baseURL string,
	timeout time.Duration,
	metrics Metrics,
	logger Logger,
) *Service {
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &Service{
		mailer:           mailer,
		photographerRepo: photographerRepo,
		userRepo:         userRepo,
		baseURL:          baseURL,
		timeout:          timeout,
		metrics:          metrics,
		logger:           logger,
		runAsync:         func(fn func()) { go fn() },
	}
}

// SendResults отправляет письмо с результатами на recipient или, если он пуст, на гостевой email.
func (s *Service) SendResults(ctx context.Context, booking *domain.Booking, recipient string) error {
	if !booking.HasResults() {
		return fmt.Errorf("%w: booking %d", ErrNoResults, booking.ID)
	}

	recipient = strings.TrimSpace(recipient)
	if recipient == "" && booking.Guest != nil {
		recipient = booking.Guest.Email
	}
	if recipient == "" {
		return fmt.Errorf("%w: booking %d", ErrNoRecipient, booking.ID)
	}

	email := ComposeResults(booking, s.senderName(ctx, booking.PhotographerID), recipient, s.baseURL)

	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.mailer.Send(sendCtx, mailer.Message{To: email.To, Subject: email.Subject, Body: email.Body})
	s.observe(err == nil)
	if err != nil {
		s.logger.Error("Notifications: failed to send results of booking id=%d to %s: %v", booking.ID, recipient, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	s.logger.Info("Notifications: results of booking id=%d sent to %s", booking.ID, recipient)
	return nil
}

// SendResultsAsync отправляет результаты в фоне после коммита транзакции.
// Ошибки только логируются.
func (s *Service) SendResultsAsync(booking *domain.Booking, recipient string) {
	s.pending.Add(1)
	s.inFlight.Add(1)
	s.runAsync(func() {
		defer s.pending.Done()
		defer s.inFlight.Add(-1)
		if err := s.SendResults(context.Background(), booking, recipient); err != nil {
			s.logger.Warn("Notifications: async results email for booking id=%d dropped: %v", booking.ID, err)
		}
	})
}

// Wait дожидается фоновых отправок, запущенных SendResultsAsync.
// Если ctx истёк раньше, возвращает ErrPendingEmails с числом незавершённых писем.
func (s *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %d still in flight: %v", ErrPendingEmails, s.inFlight.Load(), ctx.Err())
	}
}

// senderName имя фотографа для темы письма; при ошибке используется имя студии
func (s *Service) senderName(ctx context.Context, photographerID int64) string {
	photographer, err := s.photographerRepo.GetByID(ctx, photographerID)
	if err != nil {
		s.logger.Warn("Notifications: failed to get photographer id=%d: %v", photographerID, err)
		return ""
	}
	user, err := s.userRepo.GetByID(ctx, photographer.UserID)
	if err != nil {
		s.logger.Warn("Notifications: failed to get user id=%d: %v", photographer.UserID, err)
		return ""
	}
	return user.DisplayName()
}

func (s *Service) observe(ok bool) {
	if s.metrics != nil {
		s.metrics.ObserveResultEmail(ok)
	}
}
