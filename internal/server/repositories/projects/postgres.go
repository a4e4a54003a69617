package projects

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

const selectProject = `SELECT p.id, p.title, p.description, p.owner_id, p.created_at FROM projects p `

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	p := &models.Project{}
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.OwnerID, &p.CreatedAt)
	return p, err
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx, selectProject+"WHERE p.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := r.loadMembers(ctx, []*models.Project{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) FindAllForAccount(ctx context.Context, accountID string) ([]*models.Project, error) {
	query := selectProject + `
		WHERE p.owner_id = $1
		   OR EXISTS (SELECT 1 FROM project_members pm WHERE pm.project_id = p.id AND pm.account_id = $1)
		ORDER BY p.created_at, p.id`

	list, err := r.scanAll(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	if err := r.loadMembers(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *PostgresRepository) scanAll(ctx context.Context, query string, args ...any) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) loadMembers(ctx context.Context, list []*models.Project) error {
	if len(list) == 0 {
		return nil
	}
	byID := make(map[string]*models.Project, len(list))
	ids := make([]string, 0, len(list))
	for _, p := range list {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT project_id, account_id FROM project_members WHERE project_id IN (`+
			dbx.Placeholders(1, len(ids))+`) ORDER BY project_id, account_id`,
		dbx.Args(ids)...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var projectID, accountID string
		if err := rows.Scan(&projectID, &accountID); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if p, ok := byID[projectID]; ok {
			p.MemberIDs = append(p.MemberIDs, accountID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Project) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO projects (id, title, description, owner_id) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		p.ID, p.Title, p.Description, p.OwnerID).Scan(&p.CreatedAt)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	if err := r.AddMember(ctx, p.ID, p.OwnerID); err != nil {
		return err
	}
	p.MemberIDs = []string{p.OwnerID}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Project) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET title = $1, description = $2 WHERE id = $3`, p.Title, p.Description, p.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

// Delete removes the project together with its tasks and their curriculum links.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) AddMember(ctx context.Context, projectID, accountID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO project_members (project_id, account_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		projectID, accountID)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
