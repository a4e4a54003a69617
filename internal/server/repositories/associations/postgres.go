package associations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskplanner/internal/common"
	"github.com/dmitrijs2005/taskplanner/internal/dbx"
	"github.com/dmitrijs2005/taskplanner/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectAssociation = `SELECT id, task_id, curriculum_id, start_date, end_date, version FROM task_curricula `

func scanAssociation(row interface{ Scan(...any) error }) (*models.Association, error) {
	a := &models.Association{}
	err := row.Scan(&a.ID, &a.TaskID, &a.CurriculumID, &a.StartDate, &a.EndDate, &a.Version)
	return a, err
}

func (r *PostgresRepository) FindByCurriculumAndTask(ctx context.Context, curriculumID, taskID string) (*models.Association, error) {
	a, err := scanAssociation(r.db.QueryRowContext(ctx,
		selectAssociation+"WHERE curriculum_id = $1 AND task_id = $2", curriculumID, taskID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) FindAllByTask(ctx context.Context, taskID string) ([]*models.Association, error) {
	return r.list(ctx, selectAssociation+"WHERE task_id = $1 ORDER BY curriculum_id, id", taskID)
}

func (r *PostgresRepository) FindAllByCurriculum(ctx context.Context, curriculumID string) ([]*models.Association, error) {
	return r.list(ctx, selectAssociation+"WHERE curriculum_id = $1 ORDER BY start_date, task_id", curriculumID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, arg string) ([]*models.Association, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Association
	for rows.Next() {
		a, err := scanAssociation(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Association) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO task_curricula (id, task_id, curriculum_id, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING version`,
		a.ID, a.TaskID, a.CurriculumID, a.StartDate, a.EndDate).Scan(&a.Version)
	if err != nil {
		switch {
		case dbx.IsUniqueViolation(err):
			return common.ErrAlreadyExists
		case dbx.IsForeignKeyViolation(err):
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, a *models.Association) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE task_curricula SET start_date = $1, end_date = $2, version = version + 1
		WHERE id = $3 AND version = $4`,
		a.StartDate, a.EndDate, a.ID, a.Version)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrVersionConflict
	}
	a.Version++
	return nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM task_curricula WHERE id IN (`+dbx.Placeholders(1, len(ids))+`)`, dbx.Args(ids)...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
