package curricula

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

const selectCurriculum = `SELECT id, account_id, title, created_at FROM curricula `

func (r *PostgresRepository) findOne(ctx context.Context, where string, arg any) (*models.Curriculum, error) {
	c := &models.Curriculum{}
	err := r.db.QueryRowContext(ctx, selectCurriculum+where, arg).Scan(&c.ID, &c.AccountID, &c.Title, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Curriculum, error) {
	return r.findOne(ctx, "WHERE id = $1", id)
}

func (r *PostgresRepository) FindByAccount(ctx context.Context, accountID string) (*models.Curriculum, error) {
	return r.findOne(ctx, "WHERE account_id = $1", accountID)
}

func (r *PostgresRepository) FindAllByID(ctx context.Context, ids []string) ([]*models.Curriculum, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := selectCurriculum + "WHERE id IN (" + dbx.Placeholders(1, len(ids)) + ") ORDER BY id"
	rows, err := r.db.QueryContext(ctx, query, dbx.Args(ids)...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Curriculum
	for rows.Next() {
		c := &models.Curriculum{}
		if err := rows.Scan(&c.ID, &c.AccountID, &c.Title, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Curriculum) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO curricula (id, account_id, title) VALUES ($1, $2, $3) RETURNING created_at`,
		c.ID, c.AccountID, c.Title).Scan(&c.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, c *models.Curriculum) error {
	res, err := r.db.ExecContext(ctx, `UPDATE curricula SET title = $1 WHERE id = $2`, c.Title, c.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

// Delete removes the curriculum; its task links go with it (ON DELETE CASCADE).
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM curricula WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
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
