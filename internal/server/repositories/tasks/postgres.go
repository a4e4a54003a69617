package tasks

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

const selectTask = `
	SELECT t.id, t.title, t.description, t.creator, t.start_date, t.end_date, t.status, t.project_id, t.version, t.created_at
	FROM tasks t
`

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	t := &models.Task{}
	var status string
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Creator, &t.StartDate, &t.EndDate,
		&status, &t.ProjectID, &t.Version, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Status = models.TaskStatus(status)
	return t, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, selectTask+"WHERE t.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := r.loadAssignees(ctx, []*models.Task{t}); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *PostgresRepository) FindAllByID(ctx context.Context, ids []string) ([]*models.Task, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := selectTask + "WHERE t.id IN (" + dbx.Placeholders(1, len(ids)) + ") ORDER BY t.start_date, t.id"
	return r.query(ctx, query, dbx.Args(ids)...)
}

func (r *PostgresRepository) FindAllVisibleTo(ctx context.Context, accountID string) ([]*models.Task, error) {
	query := selectTask + `
	WHERE EXISTS (SELECT 1 FROM task_assignees ta WHERE ta.task_id = t.id AND ta.account_id = $1)
	   OR EXISTS (SELECT 1 FROM projects p WHERE p.id = t.project_id AND p.owner_id = $1)
	   OR EXISTS (SELECT 1 FROM project_members pm WHERE pm.project_id = t.project_id AND pm.account_id = $1)
	ORDER BY t.start_date, t.id`
	return r.query(ctx, query, accountID)
}

func (r *PostgresRepository) query(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	result, err := r.scanAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if err := r.loadAssignees(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) scanAll(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) loadAssignees(ctx context.Context, list []*models.Task) error {
	if len(list) == 0 {
		return nil
	}
	byID := make(map[string]*models.Task, len(list))
	ids := make([]string, 0, len(list))
	for _, t := range list {
		byID[t.ID] = t
		ids = append(ids, t.ID)
	}

	query := `SELECT task_id, account_id FROM task_assignees WHERE task_id IN (` +
		dbx.Placeholders(1, len(ids)) + `) ORDER BY task_id, account_id`
	rows, err := r.db.QueryContext(ctx, query, dbx.Args(ids)...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var taskID, accountID string
		if err := rows.Scan(&taskID, &accountID); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if t, ok := byID[taskID]; ok {
			t.AssigneeIDs = append(t.AssigneeIDs, accountID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	query := `
		INSERT INTO tasks (id, title, description, creator, start_date, end_date, status, project_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING version, created_at
	`
	err := r.db.QueryRowContext(ctx, query, t.ID, t.Title, t.Description, t.Creator,
		t.StartDate, t.EndDate, string(t.Status), t.ProjectID).Scan(&t.Version, &t.CreatedAt)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, t *models.Task) error {
	query := `
		UPDATE tasks SET
			title = $1, description = $2, start_date = $3, end_date = $4, status = $5, project_id = $6,
			version = version + 1
		WHERE id = $7 AND version = $8
	`
	res, err := r.db.ExecContext(ctx, query, t.Title, t.Description, t.StartDate, t.EndDate,
		string(t.Status), t.ProjectID, t.ID, t.Version)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		t.Version++
		return nil
	case 0:
		return common.ErrVersionConflict
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) SetAssignees(ctx context.Context, taskID string, accountIDs []string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM task_assignees WHERE task_id = $1`, taskID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	for _, accountID := range accountIDs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO task_assignees (task_id, account_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			taskID, accountID)
		if err != nil {
			if dbx.IsForeignKeyViolation(err) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}
