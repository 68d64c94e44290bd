package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StudioBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-StudioBooking/pkg/ptr"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	b, _ := args.Get(0).([]*domain.Booking)
	return b, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	customer     = domain.Actor{UserID: 9, Role: domain.RoleCustomer}
	stranger     = domain.Actor{UserID: 10, Role: domain.RoleCustomer}
	photographer = domain.Actor{UserID: 7, Role: domain.RolePhotographer, PhotographerID: ptr.Ptr(int64(3))}
	admin        = domain.Actor{UserID: 1, Role: domain.RoleAdmin}
)

func TestService_GetByID(t *testing.T) {
	booking := &domain.Booking{
		ID:             21,
		PhotographerID: 3,
		UserID:         ptr.Ptr(int64(9)),
		Date:           time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
		EndTime:        "11:00",
		Status:         domain.StatusPending,
	}

	tests := []struct {
		name    string
		actor   domain.Actor
		wantErr error
	}{
		{name: "owner", actor: customer},
		{name: "photographer", actor: photographer},
		{name: "admin", actor: admin},
		{name: "stranger", actor: stranger, wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepo{}
			repo.On("GetByID", mock.Anything, int64(21)).Return(booking, nil)
			svc := NewService(repo, nopLogger{})

			got, err := svc.GetByID(context.Background(), tt.actor, 21)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2025-03-14", got.Date)
			assert.Equal(t, "11:00", got.EndTime)
			assert.Equal(t, []string{}, got.ResultPhotos)
		})
	}
}

func TestService_GetByID_Errors(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.On("GetByID", mock.Anything, int64(1)).Return(nil, bookingRepo.ErrBookingNotFound)
	repo.On("GetByID", mock.Anything, int64(2)).Return(nil, errors.New("db down"))
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), admin, 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetByID(context.Background(), admin, 2)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_ListMy_FiltersByUser(t *testing.T) {
	repo := &mockBookingRepo{}
	repo.On("GetByFilter", mock.Anything, domain.BookingsFilter{UserID: ptr.Ptr(int64(9))}).
		Return([]*domain.Booking{{ID: 1}, {ID: 2}}, nil)
	svc := NewService(repo, nopLogger{})

	got, err := svc.ListMy(context.Background(), &models.ListBookingsRequest{Actor: customer})

	require.NoError(t, err)
	assert.Equal(t, 2, got.Total)
	repo.AssertExpectations(t)
}

func TestService_ListPhotographer(t *testing.T) {
	repo := &mockBookingRepo{}
	cancelled := domain.StatusCancelled
	repo.On("GetByFilter", mock.Anything, domain.BookingsFilter{
		PhotographerID:  ptr.Ptr(int64(3)),
		Status:          &cancelled,
		IncludeInactive: true,
	}).Return([]*domain.Booking{}, nil)
	svc := NewService(repo, nopLogger{})

	got, err := svc.ListPhotographer(context.Background(), &models.ListBookingsRequest{Actor: photographer, Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, 0, got.Total)
	assert.NotNil(t, got.Bookings)

	_, err = svc.ListPhotographer(context.Background(), &models.ListBookingsRequest{Actor: customer})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_ListAll(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.ListAll(context.Background(), &models.ListBookingsRequest{Actor: photographer})
	assert.ErrorIs(t, err, ErrAccessDenied)

	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.ListAll(context.Background(), &models.ListBookingsRequest{Actor: admin, StartDate: &from, EndDate: &to})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.AssertNotCalled(t, "GetByFilter", mock.Anything, mock.Anything)
}
