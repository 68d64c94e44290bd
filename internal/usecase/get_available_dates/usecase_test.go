package get_available_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-StudioBooking/pkg/ptr"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	b, _ := args.Get(0).([]*domain.Booking)
	return b, args.Error(1)
}

type mockPhotographerRepo struct{ mock.Mock }

func (m *mockPhotographerRepo) GetByID(ctx context.Context, id int64) (*domain.Photographer, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Photographer)
	return p, args.Error(1)
}

type mockCatalogRepo struct{ mock.Mock }

func (m *mockCatalogRepo) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*domain.Service)
	return s, args.Error(1)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestUseCase_Execute(t *testing.T) {
	bookings := &mockBookingRepo{}
	photographers := &mockPhotographerRepo{}
	catalog := &mockCatalogRepo{}

	// Сегодня понедельник 2025-06-02, 17:30; горизонт 7 дней
	uc := NewUseCase(bookings, photographers, catalog, domain.DefaultSlotRules(), 7, 60, time.UTC, nopLogger{})
	uc.timeProvider = fixedTime{t: day(2).Add(17*time.Hour + 30*time.Minute)}

	photographers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Photographer{
		ID: 1,
		Calendar: domain.WorkCalendar{
			Days:  []int{0, 1, 2, 3, 4},
			Start: types.MustTimeString("09:00"),
			End:   types.MustTimeString("11:00"),
		},
	}, nil)
	catalog.On("GetServiceByID", mock.Anything, int64(3)).Return(&domain.Service{ID: 3, DurationMinutes: 120}, nil)

	// 3 июня занят целиком, 4 июня занят только частично
	bookings.On("GetByFilter", mock.Anything, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return f.StartDate.Equal(day(2)) && f.EndDate.Equal(day(9))
	})).Return([]*domain.Booking{
		{ID: 1, Date: day(3), StartTime: "09:00", EndTime: "11:00", Status: domain.StatusConfirmed},
		{ID: 2, Date: day(4), StartTime: "09:00", EndTime: "10:00", Status: domain.StatusCancelled},
	}, nil).Once()

	resp, err := uc.Execute(context.Background(), &Request{PhotographerID: 1, ServiceID: ptr.Ptr(int64(3))})
	require.NoError(t, err)

	// 2 июня время прошло, 3 июня занято, 7-8 июня выходные
	assert.Equal(t, []time.Time{day(4), day(5), day(6), day(9)}, resp.Dates)
	bookings.AssertExpectations(t)
}

func TestUseCase_Execute_DefaultDuration(t *testing.T) {
	bookings := &mockBookingRepo{}
	photographers := &mockPhotographerRepo{}
	catalog := &mockCatalogRepo{}

	uc := NewUseCase(bookings, photographers, catalog, domain.DefaultSlotRules(), 1, 60, time.UTC, nopLogger{})
	uc.timeProvider = fixedTime{t: day(2)}

	photographers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Photographer{ID: 1, Calendar: domain.DefaultWorkCalendar()}, nil)
	bookings.On("GetByFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{PhotographerID: 1})
	require.NoError(t, err)

	assert.Equal(t, []time.Time{day(2), day(3)}, resp.Dates)
	catalog.AssertNotCalled(t, "GetServiceByID", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_UnknownService(t *testing.T) {
	photographers := &mockPhotographerRepo{}
	catalog := &mockCatalogRepo{}

	uc := NewUseCase(&mockBookingRepo{}, photographers, catalog, domain.DefaultSlotRules(), 7, 60, time.UTC, nopLogger{})

	photographers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Photographer{ID: 1, Calendar: domain.DefaultWorkCalendar()}, nil)
	catalog.On("GetServiceByID", mock.Anything, int64(3)).Return(nil, catalogRepo.ErrServiceNotFound)

	_, err := uc.Execute(context.Background(), &Request{PhotographerID: 1, ServiceID: ptr.Ptr(int64(3))})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
