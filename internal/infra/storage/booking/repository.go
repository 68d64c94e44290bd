package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/psqlbuilder"
)

// exclusionViolation код ошибки Postgres для EXCLUDE-ограничения bookings_no_overlap
const exclusionViolation = "23P01"

var bookingColumns = []string{
	"id",
	"photographer_id",
	"service_id",
	"user_id",
	"guest_first_name",
	"guest_last_name",
	"guest_email",
	"booking_date",
	"start_time",
	"end_time",
	"status",
	"price",
	"additional_service_ids",
	"result_photos",
	"result_videos",
	"cancelled_by",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var guestFirst, guestLast, guestEmail *string
	if booking.Guest != nil {
		guestFirst = &booking.Guest.FirstName
		guestLast = &booking.Guest.LastName
		guestEmail = &booking.Guest.Email
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"photographer_id",
			"service_id",
			"user_id",
			"guest_first_name",
			"guest_last_name",
			"guest_email",
			"booking_date",
			"start_time",
			"end_time",
			"status",
			"price",
			"additional_service_ids",
		).
		Values(
			booking.PhotographerID,
			booking.ServiceID,
			booking.UserID,
			guestFirst,
			guestLast,
			guestEmail,
			booking.Date.Format(domain.DateFormat),
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.Price,
			pq.Array(nonNilInt64(booking.AdditionalServiceIDs)),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == exclusionViolation {
			return nil, fmt.Errorf("%w: Create - %v", ErrSlotConflict, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	booking.ResultPhotos = []string{}
	booking.ResultVideos = []string{}

	return booking, nil
}

// GetByID получает бронирование по ID.
// Внутри транзакции строка блокируется (FOR UPDATE) до её завершения.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByFilter получает бронирования с гибкой фильтрацией.
// Поддерживает фильтрацию по фотографу, клиенту, периоду и статусу.
//
// Если выборка идёт по одному фотографу на одну дату внутри транзакции,
// строки блокируются (FOR UPDATE): так создание бронирования сериализуется
// по паре (фотограф, дата).
func (r *Repository) GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).From("bookings")

	if filter.PhotographerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"photographer_id": *filter.PhotographerID})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": filter.StartDate.Format(domain.DateFormat)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": filter.EndDate.Format(domain.DateFormat)})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	singleDay := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
	if singleDay {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC", "start_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && singleDay && filter.PhotographerID != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, "UpdateStatus", query, args)
}

// Cancel переводит бронирование в CANCELLED и сохраняет, кто и почему отменил
func (r *Repository) Cancel(ctx context.Context, id int64, cancelledBy domain.Role, reason *string) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_by", cancelledBy).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, "Cancel", query, args)
}

// UpdateDetails сохраняет услугу, конец сеанса, доп. услуги и пересчитанную цену
func (r *Repository) UpdateDetails(ctx context.Context, booking *domain.Booking) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("service_id", booking.ServiceID).
		Set("end_time", booking.EndTime).
		Set("additional_service_ids", pq.Array(nonNilInt64(booking.AdditionalServiceIDs))).
		Set("price", booking.Price).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - build update query: %v", ErrBuildQuery, err)
	}

	err = r.execOne(ctx, "UpdateDetails", query, args)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == exclusionViolation {
		return fmt.Errorf("%w: UpdateDetails - %v", ErrSlotConflict, err)
	}
	return err
}

// AppendResults дописывает ссылки на загруженные фото и видео
func (r *Repository) AppendResults(ctx context.Context, id int64, photos, videos []string) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("result_photos", squirrel.Expr("result_photos || ?::text[]", pq.Array(nonNilString(photos)))).
		Set("result_videos", squirrel.Expr("result_videos || ?::text[]", pq.Array(nonNilString(videos)))).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AppendResults - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, "AppendResults", query, args)
}

func (r *Repository) execOne(ctx context.Context, op, query string, args []interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking                          domain.Booking
		userID                           sql.NullInt64
		guestFirst, guestLast, guestMail sql.NullString
		cancelledBy, cancellationReason  sql.NullString
		cancelledAt                      sql.NullTime
		createdAt, updatedAt             sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.PhotographerID,
		&booking.ServiceID,
		&userID,
		&guestFirst,
		&guestLast,
		&guestMail,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.Price,
		pq.Array(&booking.AdditionalServiceIDs),
		pq.Array(&booking.ResultPhotos),
		pq.Array(&booking.ResultVideos),
		&cancelledBy,
		&cancellationReason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Date = domain.DateOnly(booking.Date)
	if userID.Valid {
		booking.UserID = &userID.Int64
	}
	if guestMail.Valid {
		booking.Guest = &domain.GuestContact{
			FirstName: guestFirst.String,
			LastName:  guestLast.String,
			Email:     guestMail.String,
		}
	}
	if cancelledBy.Valid {
		role := domain.Role(cancelledBy.String)
		booking.CancelledBy = &role
	}
	if cancellationReason.Valid {
		booking.CancellationReason = &cancellationReason.String
	}
	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func nonNilInt64(v []int64) []int64 {
	if v == nil {
		return []int64{}
	}
	return v
}

func nonNilString(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
