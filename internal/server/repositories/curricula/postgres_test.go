package curricula

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/taskplanner/internal/common"
	"github.com/dmitrijs2005/taskplanner/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

var columns = []string{"id", "account_id", "title", "created_at"}

func TestFindByAccount(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT\s+id,\s*account_id,\s*title,\s*created_at\s+FROM\s+curricula\s+WHERE\s+account_id\s*=\s*\$1`).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("c1", "a1", "Semester", now))

	got, err := repo.FindByAccount(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, &models.Curriculum{ID: "c1", AccountID: "a1", Title: "Semester", CreatedAt: now}, got)
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+curricula\s+WHERE\s+id\s*=\s*\$1`).WithArgs("c9").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "c9")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFindAllByID_SkipsUnknown(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+curricula\s+WHERE\s+id\s+IN\s+\(\$1,\s*\$2,\s*\$3\)`).
		WithArgs("c1", "c2", "ghost").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("c1", "a1", "A", time.Now()).
			AddRow("c2", "a2", "B", time.Now()))

	got, err := repo.FindAllByID(context.Background(), []string{"c1", "c2", "ghost"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c2", got[1].ID)
}

func TestCreate_OnePerAccount(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+curricula`).
		WithArgs(sqlmock.AnyArg(), "a1", "Mine").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectQuery(`INSERT\s+INTO\s+curricula`).
		WithArgs(sqlmock.AnyArg(), "a1", "Again").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	c := &models.Curriculum{AccountID: "a1", Title: "Mine"}
	require.NoError(t, repo.Create(context.Background(), c))
	assert.NotEmpty(t, c.ID)

	err := repo.Create(context.Background(), &models.Curriculum{AccountID: "a1", Title: "Again"})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestUpdateAndDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE\s+curricula\s+SET\s+title\s*=\s*\$1\s+WHERE\s+id\s*=\s*\$2`).
		WithArgs("New", "c1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE\s+FROM\s+curricula\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("c1").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Update(context.Background(), &models.Curriculum{ID: "c1", Title: "New"}))
	assert.ErrorIs(t, repo.Delete(context.Background(), "c1"), common.ErrorNotFound)
}
