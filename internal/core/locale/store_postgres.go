package locale

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thuandang/polyglot/internal/platform/database/schema"
	"github.com/thuandang/polyglot/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListLocales(context context.Context, enabledOnly bool) ([]*Locale, error) {
	filter := ""
	if enabledOnly {
		filter = fmt.Sprintf("WHERE %s = TRUE", schema.RefLocale.Enabled)
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		%s
		ORDER BY %s ASC;
	`,
		schema.RefLocale.Code,
		schema.RefLocale.Name,
		schema.RefLocale.NativeName,
		schema.RefLocale.Enabled,
		schema.RefLocale.CreatedAt,
		schema.RefLocale.UpdatedAt,
		schema.RefLocale.Table,
		filter,
		schema.RefLocale.Code,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_locales")
	}
	defer rows.Close()

	var locales []*Locale
	for rows.Next() {
		l := &Locale{}
		if err := rows.Scan(&l.Code, &l.Name, &l.NativeName, &l.Enabled, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_locale")
		}
		locales = append(locales, l)
	}

	return locales, nil
}

func (repository *PostgresRepository) GetLocaleByCode(context context.Context, code string) (*Locale, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.RefLocale.Code,
		schema.RefLocale.Name,
		schema.RefLocale.NativeName,
		schema.RefLocale.Enabled,
		schema.RefLocale.CreatedAt,
		schema.RefLocale.UpdatedAt,
		schema.RefLocale.Table,
		schema.RefLocale.Code,
	)

	l := &Locale{}
	err := repository.db.QueryRow(context, query, code).
		Scan(&l.Code, &l.Name, &l.NativeName, &l.Enabled, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_locale")
	}
	return l, nil
}

func (repository *PostgresRepository) CreateLocale(context context.Context, locale *Locale) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6);
	`,
		schema.RefLocale.Table,
		schema.RefLocale.Code,
		schema.RefLocale.Name,
		schema.RefLocale.NativeName,
		schema.RefLocale.Enabled,
		schema.RefLocale.CreatedAt,
		schema.RefLocale.UpdatedAt,
	)

	_, err := repository.db.Exec(context, query,
		locale.Code, locale.Name, locale.NativeName, locale.Enabled, locale.CreatedAt, locale.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_locale")
	}
	return nil
}

func (repository *PostgresRepository) UpdateLocale(context context.Context, locale *Locale) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1;
	`,
		schema.RefLocale.Table,
		schema.RefLocale.Name,
		schema.RefLocale.NativeName,
		schema.RefLocale.Enabled,
		schema.RefLocale.UpdatedAt,
		schema.RefLocale.Code,
	)

	tag, err := repository.db.Exec(context, query,
		locale.Code, locale.Name, locale.NativeName, locale.Enabled, locale.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_locale")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
