package postgres

import (
	"context"
	"database/sql"
	"errors"

	"exampleapi/internal/model"
	"exampleapi/internal/repository"
)

// ExamplePostgres is a PostgreSQL implementation of repository.ExampleRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ExamplePostgres struct {
	db *sql.DB
}

// NewExamplePostgres creates a new ExamplePostgres repository.
func NewExamplePostgres(db *sql.DB) *ExamplePostgres {
	return &ExamplePostgres{db: db}
}

var _ repository.ExampleRepository = (*ExamplePostgres)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExample(row rowScanner) (*model.Example, error) {
	var e model.Example
	if err := row.Scan(&e.ID, &e.Title, &e.URL, &e.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// List returns all examples ordered by id.
func (r *ExamplePostgres) List(ctx context.Context) ([]model.Example, error) {
	const q = `
		SELECT id, title, url, description
		FROM examples
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Example, 0)
	for rows.Next() {
		e, err := scanExample(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a single example by its id.
func (r *ExamplePostgres) FindByID(ctx context.Context, id int) (*model.Example, error) {
	const q = `
		SELECT id, title, url, description
		FROM examples
		WHERE id = $1
	`
	return scanExample(r.db.QueryRowContext(ctx, q, id))
}

// Create inserts a row using the next id after the current maximum.
// Two concurrent creates may race for the same id; the loser gets a
// primary key violation.
func (r *ExamplePostgres) Create(ctx context.Context, e *model.Example) (*model.Example, error) {
	const q = `
		INSERT INTO examples (id, title, url, description)
		SELECT COALESCE(MAX(id), -1) + 1, $1, $2, $3 FROM examples
		RETURNING id, title, url, description
	`
	return scanExample(r.db.QueryRowContext(ctx, q, e.Title, e.URL, e.Description))
}

// Update merges the present fields in a single statement; a NULL
// parameter keeps the column's current value.
func (r *ExamplePostgres) Update(ctx context.Context, id int, changes model.UpdateExampleDto) (*model.Example, error) {
	const q = `
		UPDATE examples
		SET title = COALESCE($2, title),
		    url = COALESCE($3, url),
		    description = COALESCE($4, description)
		WHERE id = $1
		RETURNING id, title, url, description
	`
	return scanExample(r.db.QueryRowContext(ctx, q, id,
		nullable(changes.Title), nullable(changes.URL), nullable(changes.Description)))
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// Delete removes an example by id.
func (r *ExamplePostgres) Delete(ctx context.Context, id int) error {
	const q = `DELETE FROM examples WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
