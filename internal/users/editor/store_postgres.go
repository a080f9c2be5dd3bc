package editor

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thuandang/polyglot/internal/platform/database/schema"
	"github.com/thuandang/polyglot/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed editor store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func editorColumns() string {
	t := schema.RefEditor
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Username, t.Email, t.PasswordHash, t.Role, t.Active, t.CreatedAt, t.UpdatedAt)
}

func (repository *PostgresRepository) findBy(context context.Context, column, value string) (*Editor, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1;
	`, editorColumns(), schema.RefEditor.Table, column)

	e := &Editor{}
	err := repository.pool.QueryRow(context, query, value).Scan(
		&e.ID, &e.Username, &e.Email, &e.PasswordHash, &e.Role, &e.Active, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "find_editor")
	}
	return e, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Editor, error) {
	return repository.findBy(context, schema.RefEditor.ID, id)
}

func (repository *PostgresRepository) FindByUsername(context context.Context, username string) (*Editor, error) {
	return repository.findBy(context, schema.RefEditor.Username, username)
}

func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*Editor, error) {
	return repository.findBy(context, schema.RefEditor.Email, email)
}

func (repository *PostgresRepository) Create(context context.Context, e *Editor) error {
	t := schema.RefEditor
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`, t.Table, t.ID, t.Username, t.Email, t.PasswordHash, t.Role, t.Active, t.CreatedAt, t.UpdatedAt)

	_, err := repository.pool.Exec(context, query,
		e.ID, e.Username, e.Email, e.PasswordHash, string(e.Role), e.Active, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_editor")
	}
	return nil
}
