package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exampleapi/internal/model"
	"exampleapi/internal/repository"
)

var exampleColumns = []string{"id", "title", "url", "description"}

func TestExamplePostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewExamplePostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(exampleColumns).
			AddRow(0, "Docs", "https://turborepo.com/docs", "docs").
			AddRow(1, "Learn", "https://turborepo.com/docs/handbook", "learn")

		mock.ExpectQuery("SELECT (.+) FROM examples ORDER BY id").WillReturnRows(rows)

		items, err := repo.List(ctx)

		assert.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Learn", items[1].Title)
	})

	t.Run("empty table returns empty slice", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM examples ORDER BY id").WillReturnRows(sqlmock.NewRows(exampleColumns))

		items, err := repo.List(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM examples").WillReturnError(errors.New("db down"))

		_, err := repo.List(ctx)

		assert.EqualError(t, err, "db down")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamplePostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewExamplePostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(exampleColumns).AddRow(3, "Deploy", "https://vercel.com/new", "deploy")
		mock.ExpectQuery("SELECT (.+) FROM examples WHERE id = ").WithArgs(3).WillReturnRows(rows)

		e, err := repo.FindByID(ctx, 3)

		assert.NoError(t, err)
		assert.Equal(t, &model.Example{ID: 3, Title: "Deploy", URL: "https://vercel.com/new", Description: "deploy"}, e)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM examples WHERE id = ").WithArgs(5).WillReturnError(sql.ErrNoRows)

		e, err := repo.FindByID(ctx, 5)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, e)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamplePostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewExamplePostgres(db)

	rows := sqlmock.NewRows(exampleColumns).AddRow(4, "New", "https://new.example", "")
	mock.ExpectQuery("INSERT INTO examples").
		WithArgs("New", "https://new.example", "").
		WillReturnRows(rows)

	e, err := repo.Create(context.Background(), &model.Example{Title: "New", URL: "https://new.example"})

	assert.NoError(t, err)
	assert.Equal(t, 4, e.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamplePostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewExamplePostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(exampleColumns).AddRow(1, "Learn more", "https://turborepo.com/docs/handbook", "x")
		mock.ExpectQuery(`UPDATE examples\s+SET title = COALESCE\(\$2, title\)`).
			WithArgs(1, "Learn more", nil, "x").
			WillReturnRows(rows)

		title, desc := "Learn more", "x"
		e, err := repo.Update(ctx, 1, model.UpdateExampleDto{Title: &title, Description: &desc})

		assert.NoError(t, err)
		assert.Equal(t, "Learn more", e.Title)
		assert.Equal(t, "https://turborepo.com/docs/handbook", e.URL)
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectQuery("UPDATE examples").
			WithArgs(9, nil, "https://a.example", nil).
			WillReturnRows(sqlmock.NewRows(exampleColumns))

		url := "https://a.example"
		_, err := repo.Update(ctx, 9, model.UpdateExampleDto{URL: &url})

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExamplePostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewExamplePostgres(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM examples WHERE id = ").
			WithArgs(2).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 2))
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM examples WHERE id = ").
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 7), repository.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
