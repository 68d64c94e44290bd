package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StudioBooking/pkg/ptr"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if fn, ok := args.Get(0).(func() *domain.Booking); ok {
		return fn(), args.Error(1)
	}
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	b, _ := args.Get(0).([]*domain.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id int64, by domain.Role, reason *string) error {
	return m.Called(ctx, id, by, reason).Error(0)
}

func (m *mockBookingRepo) UpdateDetails(ctx context.Context, b *domain.Booking) error {
	return m.Called(ctx, b).Error(0)
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

func (m *mockCatalogRepo) GetAdditionalServicesByIDs(ctx context.Context, ids []int64) ([]*domain.AdditionalService, error) {
	args := m.Called(ctx, ids)
	s, _ := args.Get(0).([]*domain.AdditionalService)
	return s, args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) UpdateDiscount(ctx context.Context, id int64, discount decimal.Decimal) error {
	return m.Called(ctx, id, discount).Error(0)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) SendResultsAsync(b *domain.Booking, recipient string) {
	m.Called(b, recipient)
}

type recordingMetrics struct{ transitions []string }

func (r *recordingMetrics) ObserveTransition(from, to string) {
	r.transitions = append(r.transitions, from+"->"+to)
}

type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	customer     = domain.Actor{UserID: 7, Role: domain.RoleCustomer}
	stranger     = domain.Actor{UserID: 8, Role: domain.RoleCustomer}
	photographer = domain.Actor{UserID: 20, Role: domain.RolePhotographer, PhotographerID: ptr.Ptr(int64(1))}
	admin        = domain.Actor{UserID: 1, Role: domain.RoleAdmin}
)

type fixture struct {
	uc            *UseCase
	bookings      *mockBookingRepo
	photographers *mockPhotographerRepo
	catalog       *mockCatalogRepo
	users         *mockUserRepo
	notifier      *mockNotifier
	metrics       *recordingMetrics
}

func newFixture() *fixture {
	f := &fixture{
		bookings:      &mockBookingRepo{},
		photographers: &mockPhotographerRepo{},
		catalog:       &mockCatalogRepo{},
		users:         &mockUserRepo{},
		notifier:      &mockNotifier{},
		metrics:       &recordingMetrics{},
	}
	f.uc = NewUseCase(f.bookings, f.photographers, f.catalog, f.users, f.notifier, f.metrics,
		inlineTx{}, domain.DefaultDiscountPolicy(), nopLogger{})
	return f
}

func registeredBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:             5,
		PhotographerID: 1,
		ServiceID:      2,
		Date:           time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
		EndTime:        "11:00",
		Status:         status,
		UserID:         ptr.Ptr(int64(7)),
		Price:          decimal.RequireFromString("100.00"),
	}
}

func guestBooking(status domain.BookingStatus) *domain.Booking {
	b := registeredBooking(status)
	b.UserID = nil
	b.Guest = &domain.GuestContact{FirstName: "Олена", LastName: "Коваль", Email: "olena@example.com"}
	return b
}

func statusPtr(s domain.BookingStatus) *domain.BookingStatus { return &s }

// onGet возвращает before при первом чтении и after при повторном
func (f *fixture) onGet(before, after *domain.Booking) {
	f.bookings.On("GetByID", mock.Anything, before.ID).Return(before, nil).Once()
	f.bookings.On("GetByID", mock.Anything, before.ID).Return(after, nil).Once()
}

func TestUseCase_Confirm(t *testing.T) {
	for _, actor := range []domain.Actor{photographer, admin} {
		f := newFixture()
		f.onGet(registeredBooking(domain.StatusPending), registeredBooking(domain.StatusConfirmed))
		f.bookings.On("UpdateStatus", mock.Anything, int64(5), domain.StatusConfirmed).Return(nil)

		resp, err := f.uc.Execute(context.Background(), &Request{
			Actor: actor, BookingID: 5, Status: statusPtr(domain.StatusConfirmed),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
		assert.Equal(t, []string{"pending->confirmed"}, f.metrics.transitions)
	}
}

func TestUseCase_CustomerCannotConfirm(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(registeredBooking(domain.StatusPending), nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		Actor: customer, BookingID: 5, Status: statusPtr(domain.StatusConfirmed),
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)
	f.bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, f.metrics.transitions)
}

func TestUseCase_StrangerIsRejected(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(registeredBooking(domain.StatusPending), nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		Actor: stranger, BookingID: 5, Status: statusPtr(domain.StatusCancelled),
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUseCase_NotFound(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := f.uc.Execute(context.Background(), &Request{
		Actor: admin, BookingID: 5, Status: statusPtr(domain.StatusConfirmed),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUseCase_CancelRecordsProvenance(t *testing.T) {
	f := newFixture()
	cancelled := registeredBooking(domain.StatusCancelled)
	f.onGet(registeredBooking(domain.StatusPending), cancelled)
	f.bookings.On("Cancel", mock.Anything, int64(5), domain.RoleCustomer, mock.MatchedBy(func(r *string) bool {
		return r != nil && *r == "захворіла"
	})).Return(nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		Actor:              customer,
		BookingID:          5,
		Status:             statusPtr(domain.StatusCancelled),
		CancellationReason: ptr.Ptr("  захворіла "),
	})
	require.NoError(t, err)
	f.bookings.AssertExpectations(t)
	assert.Equal(t, []string{"pending->cancelled"}, f.metrics.transitions)
}

func TestUseCase_InvalidTransition(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(registeredBooking(domain.StatusDone), nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		Actor: admin, BookingID: 5, Status: statusPtr(domain.StatusPending),
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUseCase_CompleteRegisteredAccruesDiscount(t *testing.T) {
	f := newFixture()
	done := registeredBooking(domain.StatusDone)
	done.ResultPhotos = []string{"/media/results/photos/a.jpg"}
	completed := *done
	completed.Status = domain.StatusCompleted
	f.onGet(done, &completed)

	f.bookings.On("UpdateStatus", mock.Anything, int64(5), domain.StatusCompleted).Return(nil)
	f.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Discount: decimal.RequireFromString("9.80")}, nil)
	f.users.On("UpdateDiscount", mock.Anything, int64(7), mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("10.00"))
	})).Return(nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		Actor: photographer, BookingID: 5, Status: statusPtr(domain.StatusCompleted),
	})
	require.NoError(t, err)
	f.users.AssertExpectations(t)
	f.notifier.AssertNotCalled(t, "SendResultsAsync", mock.Anything, mock.Anything)
}

func TestUseCase_CompleteGuestSendsEmailAfterCommit(t *testing.T) {
	f := newFixture()
	done := guestBooking(domain.StatusDone)
	done.ResultVideos = []string{"/media/results/videos/v.mp4"}
	completed := *done
	completed.Status = domain.StatusCompleted
	f.onGet(done, &completed)

	f.bookings.On("UpdateStatus", mock.Anything, int64(5), domain.StatusCompleted).Return(nil)
	f.notifier.On("SendResultsAsync", &completed, "").Return()

	_, err := f.uc.Execute(context.Background(), &Request{
		Actor: photographer, BookingID: 5, Status: statusPtr(domain.StatusCompleted),
	})
	require.NoError(t, err)
	f.notifier.AssertExpectations(t)
	f.users.AssertNotCalled(t, "UpdateDiscount", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_CompleteRequiresResults(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(registeredBooking(domain.StatusDone), nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		Actor: photographer, BookingID: 5, Status: statusPtr(domain.StatusCompleted),
	})
	assert.ErrorIs(t, err, ErrResultsRequired)
}

func TestUseCase_RepeatedCompletionIsNoop(t *testing.T) {
	f := newFixture()
	completed := registeredBooking(domain.StatusCompleted)
	completed.ResultPhotos = []string{"a.jpg"}
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(completed, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{
		Actor: photographer, BookingID: 5, Status: statusPtr(domain.StatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, resp.Booking.Status)
	f.bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	f.users.AssertNotCalled(t, "UpdateDiscount", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, f.metrics.transitions)
}

func TestUseCase_EditAdditionalServicesRecomputesPrice(t *testing.T) {
	f := newFixture()
	pending := registeredBooking(domain.StatusPending)
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(pending, nil)
	f.catalog.On("GetServiceByID", mock.Anything, int64(2)).
		Return(&domain.Service{ID: 2, Price: decimal.RequireFromString("100.00"), DurationMinutes: 60}, nil)
	f.catalog.On("GetAdditionalServicesByIDs", mock.Anything, []int64{3, 4}).Return([]*domain.AdditionalService{
		{ID: 3, Price: decimal.RequireFromString("20.00")},
		{ID: 4, Price: decimal.RequireFromString("30.00")},
	}, nil)
	f.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Discount: decimal.RequireFromString("2.5")}, nil)
	f.bookings.On("UpdateDetails", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Price.Equal(decimal.RequireFromString("146.25")) && len(b.AdditionalServiceIDs) == 2
	})).Return(nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		Actor: customer, BookingID: 5, AdditionalServiceIDs: &[]int64{3, 4},
	})
	require.NoError(t, err)
	f.bookings.AssertExpectations(t)
	f.photographers.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUseCase_CustomerCannotEditConfirmed(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(registeredBooking(domain.StatusConfirmed), nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		Actor: customer, BookingID: 5, AdditionalServiceIDs: &[]int64{},
	})
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestUseCase_AdminEditsCompletedBooking(t *testing.T) {
	for _, actor := range []domain.Actor{admin, photographer} {
		t.Run(string(actor.Role), func(t *testing.T) {
			f := newFixture()
			f.bookings.On("GetByID", mock.Anything, int64(5)).Return(registeredBooking(domain.StatusCompleted), nil)
			f.catalog.On("GetServiceByID", mock.Anything, int64(2)).
				Return(&domain.Service{ID: 2, Price: decimal.RequireFromString("100.00"), DurationMinutes: 60}, nil)
			f.catalog.On("GetAdditionalServicesByIDs", mock.Anything, []int64{3}).Return([]*domain.AdditionalService{
				{ID: 3, Price: decimal.RequireFromString("20.00")},
			}, nil)
			f.users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
			f.bookings.On("UpdateDetails", mock.Anything, mock.Anything).Return(nil)

			resp, err := f.uc.Execute(context.Background(), &Request{
				Actor: actor, BookingID: 5, AdditionalServiceIDs: &[]int64{3},
			})
			require.NoError(t, err)
			assert.Equal(t, domain.StatusCompleted, resp.Booking.Status)
			assert.True(t, resp.Booking.Price.Equal(decimal.RequireFromString("120.00")))
			f.bookings.AssertExpectations(t)
		})
	}
}

func TestUseCase_CustomerCannotEditCancelled(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(registeredBooking(domain.StatusCancelled), nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		Actor: customer, BookingID: 5, AdditionalServiceIDs: &[]int64{},
	})
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestUseCase_ServiceChangeChecksOverlap(t *testing.T) {
	f := newFixture()
	pending := registeredBooking(domain.StatusPending)
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(pending, nil)
	f.catalog.On("GetServiceByID", mock.Anything, int64(9)).Return(&domain.Service{ID: 9, DurationMinutes: 120}, nil)
	f.photographers.On("GetByID", mock.Anything, int64(1)).Return(&domain.Photographer{
		ID: 1,
		Calendar: domain.WorkCalendar{
			Days:  []int{0, 1, 2, 3, 4},
			Start: types.MustTimeString("09:00"),
			End:   types.MustTimeString("18:00"),
		},
	}, nil)
	f.bookings.On("GetByFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{
		pending,
		{ID: 6, PhotographerID: 1, StartTime: "11:30", EndTime: "12:30", Status: domain.StatusConfirmed},
	}, nil)

	_, err := f.uc.Execute(context.Background(), &Request{
		Actor: admin, BookingID: 5, ServiceID: ptr.Ptr(int64(9)),
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
	f.bookings.AssertNotCalled(t, "UpdateDetails", mock.Anything, mock.Anything)
}

func TestUseCase_NothingToUpdate(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{Actor: admin, BookingID: 5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
