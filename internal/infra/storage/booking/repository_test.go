package booking

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/ptr"
	"github.com/m04kA/SMC-StudioBooking/pkg/types"
)

func newRepo(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), db, mock
}

func bookingRow(mock sqlmock.Sqlmock) *sqlmock.Rows {
	return mock.NewRows(bookingColumns)
}

var testDate = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func TestRepository_Create_Guest(t *testing.T) {
	repo, _, mock := newRepo(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(
			int64(7), int64(3), nil,
			"Olena", "Koval", "olena@example.com",
			"2025-03-14", "10:00", "11:00", "pending", "1500", sqlmock.AnyArg(),
		).
		WillReturnRows(mock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now))

	created, err := repo.Create(context.Background(), &domain.Booking{
		PhotographerID: 7,
		ServiceID:      3,
		Guest:          &domain.GuestContact{FirstName: "Olena", LastName: "Koval", Email: "olena@example.com"},
		Date:           testDate,
		StartTime:      types.MustTimeString("10:00"),
		EndTime:        types.MustTimeString("11:00"),
		Status:         domain.StatusPending,
		Price:          decimal.RequireFromString("1500"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.Empty(t, created.ResultPhotos)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_OverlapRejectedByDatabase(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(&pq.Error{Code: exclusionViolation, Message: "conflicting key value violates exclusion constraint"})

	_, err := repo.Create(context.Background(), &domain.Booking{
		PhotographerID: 7,
		ServiceID:      3,
		UserID:         ptr.Ptr(int64(5)),
		Date:           testDate,
		StartTime:      "10:00",
		EndTime:        "11:00",
		Status:         domain.StatusPending,
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := newRepo(t)
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, photographer_id")).
		WithArgs(int64(42)).
		WillReturnRows(bookingRow(mock).AddRow(
			int64(42), int64(7), int64(3), int64(5),
			nil, nil, nil,
			testDate, "10:00:00", "11:00:00", "done", "1425.00",
			"{1,2}", `{"/media/results/photos/a.jpg"}`, "{}",
			nil, nil, nil, created, created,
		))

	b, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDone, b.Status)
	assert.Equal(t, types.TimeString("10:00"), b.StartTime)
	assert.Equal(t, types.TimeString("11:00"), b.EndTime)
	require.NotNil(t, b.UserID)
	assert.Equal(t, int64(5), *b.UserID)
	assert.Nil(t, b.Guest)
	assert.Equal(t, []int64{1, 2}, b.AdditionalServiceIDs)
	assert.Equal(t, []string{"/media/results/photos/a.jpg"}, b.ResultPhotos)
	assert.True(t, b.HasResults())
	assert.True(t, decimal.RequireFromString("1425").Equal(b.Price))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, photographer_id")).
		WithArgs(int64(1)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_GetByID_LocksInsideTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)

	mock.ExpectBegin()
	sqlTx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), dbmetrics.NewSqlTxWrapper(sqlTx))

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(1)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByFilter_SingleDayForPhotographer(t *testing.T) {
	repo, db, mock := newRepo(t)

	mock.ExpectBegin()
	sqlTx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), dbmetrics.NewSqlTxWrapper(sqlTx))

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, photographer_id, service_id, user_id, guest_first_name, guest_last_name, guest_email, " +
			"booking_date, start_time, end_time, status, price, additional_service_ids, result_photos, result_videos, " +
			"cancelled_by, cancellation_reason, cancelled_at, created_at, updated_at FROM bookings " +
			"WHERE photographer_id = $1 AND booking_date >= $2 AND booking_date <= $3 AND status NOT IN ($4) " +
			"ORDER BY start_time ASC FOR UPDATE")).
		WithArgs(int64(7), "2025-03-14", "2025-03-14", "cancelled").
		WillReturnRows(bookingRow(mock).AddRow(
			int64(1), int64(7), int64(3), nil,
			"Ivan", "Petrenko", "ivan@example.com",
			testDate, "09:00:00", "10:00:00", "pending", "1000.00",
			"{}", "{}", "{}",
			nil, nil, nil, testDate, testDate,
		))

	bookings, err := repo.GetByFilter(ctx, domain.BookingsFilter{
		PhotographerID: ptr.Ptr(int64(7)),
		StartDate:      &testDate,
		EndDate:        &testDate,
	})

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.True(t, bookings[0].IsGuest())
	assert.Equal(t, "ivan@example.com", bookings[0].Guest.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel(t *testing.T) {
	repo, _, mock := newRepo(t)
	reason := "захворіла"

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE bookings SET status = $1, cancelled_by = $2, cancellation_reason = $3, cancelled_at = NOW(), updated_at = NOW() WHERE id = $4")).
		WithArgs("cancelled", "customer", reason, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Cancel(context.Background(), 9, domain.RoleCustomer, &reason))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1")).
		WithArgs("confirmed", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 9, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_AppendResults(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE bookings SET result_photos = result_photos || $1::text[], result_videos = result_videos || $2::text[]")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AppendResults(context.Background(), 9, []string{"/media/a.jpg"}, nil)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
