/*
Package page provides storage and business logic for localized content records.

Translated attributes live in JSONB columns keyed by locale code. The
PostgreSQL layer leans on JSONB operators for locale-aware behavior:

  - `column ->> 'locale'` extracts one locale's value for filtering/sorting.
  - Extraction expressions are appended to WHERE/ORDER BY only; the SELECT
    list is a fixed column set and is never narrowed by any filter.
*/
package page

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thuandang/polyglot/internal/platform/database/schema"
	"github.com/thuandang/polyglot/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed page store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// selectColumns is the fixed projection used by every read query.
func selectColumns() string {
	t := schema.RefPage
	return strings.Join([]string{
		t.ID, t.Slug, t.Title, t.Summary, t.Body, t.Status, t.CreatedBy, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}, ", ")
}

func scanPage(row interface{ Scan(...any) error }, p *Page) error {
	return row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Summary, &p.Body,
		&p.Status, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
	)
}

/*
List returns a filtered, paginated slice of pages and the total count.

Description: Uses COUNT(*) OVER() to retrieve the total without a second
round-trip. Translated-title search and sorting extract the resolved locale
from the JSONB title column with ->>; rows whose title lacks that locale sort
last via NULLS LAST rather than being excluded.
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Page, int, error) {
	t := schema.RefPage

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s IS NULL
	`, selectColumns(), t.Table, t.DeletedAt))

	// Status filtering
	if len(filter.Status) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = ANY($%d)", t.Status, argID))
		args = append(args, filter.Status)
		argID++
	}

	// Translated title search on the resolved locale
	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s ->> $%d ILIKE $%d", t.Title, argID, argID+1))
		args = append(args, filter.Locale, "%"+filter.Query+"%")
		argID += 2
	}

	// Sorting
	switch filter.Sort {
	case "title":
		queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ->> $%d ASC NULLS LAST, %s DESC", t.Title, argID, t.ID))
		args = append(args, filter.Locale)
		argID++
	case "oldest":
		queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC, %s ASC", t.CreatedAt, t.ID))
	default:
		queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s DESC, %s DESC", t.CreatedAt, t.ID))
	}

	// Pagination injection
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_pages")
	}
	defer rows.Close()

	var pages []*Page
	var totalCount int

	for rows.Next() {
		p := &Page{}
		err := rows.Scan(
			&p.ID, &p.Slug, &p.Title, &p.Summary, &p.Body,
			&p.Status, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_page")
		}
		pages = append(pages, p)
	}

	return pages, totalCount, nil
}

func (repository *PostgresRepository) GetBySlug(context context.Context, pageSlug string) (*Page, error) {
	t := schema.RefPage
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL;
	`, selectColumns(), t.Table, t.Slug, t.DeletedAt)

	p := &Page{}
	if err := scanPage(repository.pool.QueryRow(context, query, pageSlug), p); err != nil {
		return nil, dberr.Wrap(err, "get_page_by_slug")
	}
	return p, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Page, error) {
	t := schema.RefPage
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL;
	`, selectColumns(), t.Table, t.ID, t.DeletedAt)

	p := &Page{}
	if err := scanPage(repository.pool.QueryRow(context, query, id), p); err != nil {
		return nil, dberr.Wrap(err, "get_page_by_id")
	}
	return p, nil
}

func (repository *PostgresRepository) Create(context context.Context, p *Page) error {
	t := schema.RefPage
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`, t.Table, t.ID, t.Slug, t.Title, t.Summary, t.Body, t.Status, t.CreatedBy, t.CreatedAt, t.UpdatedAt)

	_, err := repository.pool.Exec(context, query,
		p.ID, p.Slug, p.Title, p.Summary, p.Body, p.Status, p.CreatedBy, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_page")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, p *Page) error {
	t := schema.RefPage
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $1 AND %s IS NULL;
	`, t.Table, t.Slug, t.Title, t.Summary, t.Body, t.Status, t.UpdatedAt, t.ID, t.DeletedAt)

	tag, err := repository.pool.Exec(context, query,
		p.ID, p.Slug, p.Title, p.Summary, p.Body, p.Status, p.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_page")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// Delete soft-deletes the page; the record stays for audit but drops out of
// every read path.
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.RefPage
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = NOW()
		WHERE %s = $1 AND %s IS NULL;
	`, t.Table, t.DeletedAt, t.ID, t.DeletedAt)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_page")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
