package homepage

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

var contentColumns = []string{
	"title", "description", "contact_emails", "contact_phones", "contact_addresses", "guest_promo_text", "updated_at",
}

func TestRepository_Get(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		updated := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT title, description, contact_emails, contact_phones, contact_addresses, guest_promo_text, updated_at FROM homepage_content WHERE id = $1")).
			WithArgs(singletonID).
			WillReturnRows(mock.NewRows(contentColumns).
				AddRow("Студія Світло", "Опис", "{hello@svitlo.ua}", "{+380441234567,+380501112233}", "{}", "Промо", updated))

		c, err := NewRepository(db).Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Студія Світло", c.Title)
		assert.Equal(t, []string{"hello@svitlo.ua"}, c.ContactEmails)
		assert.Equal(t, []string{"+380441234567", "+380501112233"}, c.ContactPhones)
		assert.Equal(t, updated, c.UpdatedAt)
	})

	t.Run("defaults before first save", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM homepage_content").
			WillReturnError(sql.ErrNoRows)

		c, err := NewRepository(db).Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultHomePageContent(), *c)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM homepage_content").
			WillReturnError(errors.New("connection reset"))

		_, err = NewRepository(db).Get(context.Background())
		assert.ErrorIs(t, err, ErrScanRow)
	})
}

func TestRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	updated := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO homepage_content (id,title,description,contact_emails,contact_phones,contact_addresses,guest_promo_text) " +
			"VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT (id) DO UPDATE SET")).
		WithArgs(singletonID, "Студія", "Опис", "{\"a@svitlo.ua\"}", "{}", "{\"Київ, Хрещатик 1\"}", "Промо").
		WillReturnRows(mock.NewRows([]string{"updated_at"}).AddRow(updated))

	c := &domain.HomePageContent{
		Title:            "Студія",
		Description:      "Опис",
		ContactEmails:    []string{"a@svitlo.ua"},
		ContactPhones:    []string{},
		ContactAddresses: []string{"Київ, Хрещатик 1"},
		GuestPromoText:   "Промо",
	}
	require.NoError(t, NewRepository(db).Save(context.Background(), c))
	assert.Equal(t, updated, c.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}
