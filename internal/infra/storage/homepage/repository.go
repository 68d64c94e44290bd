package homepage

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

// singletonID единственная строка таблицы
const singletonID = 1

// Repository репозиторий контента главной страницы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория контента
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает контент главной страницы; пока запись не создана, отдаются значения по умолчанию
func (r *Repository) Get(ctx context.Context) (*domain.HomePageContent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"title",
		"description",
		"contact_emails",
		"contact_phones",
		"contact_addresses",
		"guest_promo_text",
		"updated_at",
	).
		From("homepage_content").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.HomePageContent
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.Title,
		&c.Description,
		pq.Array(&c.ContactEmails),
		pq.Array(&c.ContactPhones),
		pq.Array(&c.ContactAddresses),
		&c.GuestPromoText,
		&c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		defaults := domain.DefaultHomePageContent()
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan content: %v", ErrScanRow, err)
	}

	return &c, nil
}

// Save создает или перезаписывает единственную запись контента
func (r *Repository) Save(ctx context.Context, c *domain.HomePageContent) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("homepage_content").
		Columns(
			"id",
			"title",
			"description",
			"contact_emails",
			"contact_phones",
			"contact_addresses",
			"guest_promo_text",
		).
		Values(
			singletonID,
			c.Title,
			c.Description,
			pq.Array(c.ContactEmails),
			pq.Array(c.ContactPhones),
			pq.Array(c.ContactAddresses),
			c.GuestPromoText,
		).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"title = EXCLUDED.title, " +
			"description = EXCLUDED.description, " +
			"contact_emails = EXCLUDED.contact_emails, " +
			"contact_phones = EXCLUDED.contact_phones, " +
			"contact_addresses = EXCLUDED.contact_addresses, " +
			"guest_promo_text = EXCLUDED.guest_promo_text, " +
			"updated_at = NOW() " +
			"RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if err = executor.QueryRowContext(ctx, query, args...).Scan(&c.UpdatedAt); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
