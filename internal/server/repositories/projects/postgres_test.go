package projects

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
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewPostgresRepository(db), mock
}

var columns = []string{"id", "title", "description", "owner_id", "created_at"}

func TestFindByID_WithMembers(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`FROM\s+projects\s+p\s+WHERE\s+p\.id\s*=\s*\$1`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("p1", "Launch", "", "owner", now))
	mock.ExpectQuery(`SELECT\s+project_id,\s*account_id\s+FROM\s+project_members\s+WHERE\s+project_id\s+IN\s+\(\$1\)`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"project_id", "account_id"}).
			AddRow("p1", "guest").
			AddRow("p1", "owner"))

	got, err := repo.FindByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"guest", "owner"}, got.MemberIDs)
	assert.True(t, got.HasMember("guest"))
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+projects`).WithArgs("p9").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "p9")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFindAllForAccount(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`WHERE\s+p\.owner_id\s*=\s*\$1\s+OR\s+EXISTS`).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("p1", "One", "", "a1", now).
			AddRow("p2", "Two", "", "a2", now))
	mock.ExpectQuery(`FROM\s+project_members\s+WHERE\s+project_id\s+IN\s+\(\$1,\s*\$2\)`).
		WithArgs("p1", "p2").
		WillReturnRows(sqlmock.NewRows([]string{"project_id", "account_id"}).
			AddRow("p1", "a1").
			AddRow("p2", "a1").
			AddRow("p2", "a2"))

	got, err := repo.FindAllForAccount(context.Background(), "a1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"a1", "a2"}, got[1].MemberIDs)
}

func TestCreate_AddsOwnerAsMember(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+projects`).
		WithArgs(sqlmock.AnyArg(), "Launch", "desc", "owner").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectExec(`INSERT\s+INTO\s+project_members`).
		WithArgs(sqlmock.AnyArg(), "owner").
		WillReturnResult(sqlmock.NewResult(0, 1))

	p := &models.Project{Title: "Launch", Description: "desc", OwnerID: "owner"}
	require.NoError(t, repo.Create(context.Background(), p))
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, []string{"owner"}, p.MemberIDs)
}

func TestAddMember_UnknownAccount(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT\s+INTO\s+project_members`).
		WithArgs("p1", "ghost").
		WillReturnError(&pgconn.PgError{Code: "23503"})

	assert.ErrorIs(t, repo.AddMember(context.Background(), "p1", "ghost"), common.ErrorNotFound)
}

func TestUpdateAndDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE\s+projects\s+SET\s+title\s*=\s*\$1,\s*description\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$3`).
		WithArgs("T", "D", "p1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE\s+FROM\s+projects\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("p1").WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), &models.Project{ID: "p1", Title: "T", Description: "D"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	require.NoError(t, repo.Delete(context.Background(), "p1"))
}
