package photographer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var photographerColumns = []string{
	"id",
	"user_id",
	"bio",
	"phone",
	"service_ids",
	"work_days",
	"work_start",
	"work_end",
}

// Repository репозиторий профилей фотографов и их рабочих календарей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория фотографов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профиль фотографа по ID.
// Внутри транзакции строка блокируется (FOR UPDATE): параллельные бронирования
// одного фотографа выстраиваются в очередь.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Photographer, error) {
	selectBuilder := psqlbuilder.Select(photographerColumns...).
		From("photographers").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return r.getOne(ctx, "GetByID", selectBuilder)
}

// GetByUserID получает профиль фотографа по ID пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Photographer, error) {
	selectBuilder := psqlbuilder.Select(photographerColumns...).
		From("photographers").
		Where(squirrel.Eq{"user_id": userID})

	return r.getOne(ctx, "GetByUserID", selectBuilder)
}

// UpdateCalendar сохраняет рабочие дни и часы фотографа
func (r *Repository) UpdateCalendar(ctx context.Context, id int64, calendar domain.WorkCalendar) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	days := make([]int64, len(calendar.Days))
	for i, d := range calendar.Days {
		days[i] = int64(d)
	}

	query, args, err := psqlbuilder.Update("photographers").
		Set("work_days", pq.Array(days)).
		Set("work_start", calendar.Start).
		Set("work_end", calendar.End).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateCalendar - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateCalendar - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateCalendar - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPhotographerNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) (*domain.Photographer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var (
		p    domain.Photographer
		bio  sql.NullString
		tel  sql.NullString
		days []int64
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.UserID,
		&bio,
		&tel,
		pq.Array(&p.ServiceIDs),
		pq.Array(&days),
		&p.Calendar.Start,
		&p.Calendar.End,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPhotographerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan photographer: %v", ErrScanRow, op, err)
	}

	p.Bio = bio.String
	p.Phone = tel.String
	p.Calendar.Days = make([]int, len(days))
	for i, d := range days {
		p.Calendar.Days[i] = int(d)
	}

	return &p, nil
}

var profileColumns = []string{
	"p.id",
	"p.user_id",
	"p.bio",
	"p.phone",
	"p.service_ids",
	"p.work_days",
	"p.work_start",
	"p.work_end",
	"u.email",
	"u.first_name",
	"u.last_name",
}

// List возвращает профили всех фотографов, отсортированные по email пользователя
func (r *Repository) List(ctx context.Context) ([]domain.PhotographerProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.profileSelect().
		OrderBy("u.email", "p.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	profiles := make([]domain.PhotographerProfile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan photographer: %v", ErrScanRow, err)
		}
		profiles = append(profiles, *profile)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return profiles, nil
}

// GetProfile получает профиль фотографа вместе с данными пользователя
func (r *Repository) GetProfile(ctx context.Context, id int64) (*domain.PhotographerProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.profileSelect().
		Where(squirrel.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetProfile - build select query: %v", ErrBuildQuery, err)
	}

	profile, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPhotographerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetProfile - scan photographer: %v", ErrScanRow, err)
	}

	return profile, nil
}

// UpdateProfile частично обновляет био, телефон и список услуг фотографа
func (r *Repository) UpdateProfile(ctx context.Context, id int64, upd domain.PhotographerUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("photographers").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.Bio != nil {
		updateBuilder = updateBuilder.Set("bio", *upd.Bio)
	}
	if upd.Phone != nil {
		updateBuilder = updateBuilder.Set("phone", *upd.Phone)
	}
	if upd.ServiceIDs != nil {
		updateBuilder = updateBuilder.Set("service_ids", pq.Array(*upd.ServiceIDs))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateProfile - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPhotographerNotFound
	}

	return nil
}

func (r *Repository) profileSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(profileColumns...).
		From("photographers p").
		Join("users u ON u.id = p.user_id")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*domain.PhotographerProfile, error) {
	var (
		p    domain.PhotographerProfile
		bio  sql.NullString
		tel  sql.NullString
		days []int64
	)

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&bio,
		&tel,
		pq.Array(&p.ServiceIDs),
		pq.Array(&days),
		&p.Calendar.Start,
		&p.Calendar.End,
		&p.Email,
		&p.FirstName,
		&p.LastName,
	)
	if err != nil {
		return nil, err
	}

	p.Bio = bio.String
	p.Phone = tel.String
	p.Calendar.Days = make([]int, len(days))
	for i, d := range days {
		p.Calendar.Days[i] = int(d)
	}

	return &p, nil
}
