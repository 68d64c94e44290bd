package send_results_email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StudioBooking/internal/service/notifications"
	"github.com/m04kA/SMC-StudioBooking/pkg/ptr"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) SendResults(ctx context.Context, b *domain.Booking, recipient string) error {
	return m.Called(ctx, b, recipient).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var booking = &domain.Booking{
	ID:             5,
	PhotographerID: 1,
	Status:         domain.StatusCompleted,
	ResultPhotos:   []string{"/media/a.jpg"},
}

func TestUseCase_Execute(t *testing.T) {
	tests := []struct {
		name      string
		actor     domain.Actor
		email     string
		notifyErr error
		wantErr   error
	}{
		{
			name:  "owning photographer",
			actor: domain.Actor{UserID: 20, Role: domain.RolePhotographer, PhotographerID: ptr.Ptr(int64(1))},
			email: "client@example.com",
		},
		{
			name:  "admin uses guest email",
			actor: domain.Actor{UserID: 1, Role: domain.RoleAdmin},
		},
		{
			name:    "other photographer",
			actor:   domain.Actor{UserID: 21, Role: domain.RolePhotographer, PhotographerID: ptr.Ptr(int64(2))},
			wantErr: ErrPermissionDenied,
		},
		{
			name:    "customer",
			actor:   domain.Actor{UserID: 7, Role: domain.RoleCustomer},
			wantErr: ErrPermissionDenied,
		},
		{
			name:      "no results",
			actor:     domain.Actor{UserID: 1, Role: domain.RoleAdmin},
			notifyErr: notifications.ErrNoResults,
			wantErr:   ErrNoResults,
		},
		{
			name:      "no recipient",
			actor:     domain.Actor{UserID: 1, Role: domain.RoleAdmin},
			notifyErr: notifications.ErrNoRecipient,
			wantErr:   ErrNoRecipient,
		},
		{
			name:      "smtp failure",
			actor:     domain.Actor{UserID: 1, Role: domain.RoleAdmin},
			notifyErr: notifications.ErrSendFailed,
			wantErr:   ErrSendFailed,
		},
		{
			name:    "invalid email",
			actor:   domain.Actor{UserID: 1, Role: domain.RoleAdmin},
			email:   "not an email",
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepo{}
			notifier := &mockNotifier{}
			uc := NewUseCase(repo, notifier, nopLogger{})

			repo.On("GetByID", mock.Anything, int64(5)).Return(booking, nil)
			notifier.On("SendResults", mock.Anything, booking, tt.email).Return(tt.notifyErr)

			err := uc.Execute(context.Background(), &Request{Actor: tt.actor, BookingID: 5, Email: tt.email})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			notifier.AssertExpectations(t)
		})
	}
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := NewUseCase(repo, &mockNotifier{}, nopLogger{})
	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, bookingRepo.ErrBookingNotFound)

	err := uc.Execute(context.Background(), &Request{Actor: domain.Actor{Role: domain.RoleAdmin}, BookingID: 5})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
