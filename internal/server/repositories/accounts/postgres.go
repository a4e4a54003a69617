package accounts

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

// PostgresRepository implements Repository over dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectAccount = `
	SELECT id, username, email, password_hash, first_name, last_name, enabled,
		verification_token, verification_token_expiry, verification_attempts, verification_window_start,
		reset_token, reset_token_expiry, reset_attempts, reset_window_start,
		version, created_at
	FROM accounts
`

func (r *PostgresRepository) findOne(ctx context.Context, where string, arg any) (*models.Account, error) {
	a := &models.Account{}
	err := r.db.QueryRowContext(ctx, selectAccount+where, arg).Scan(
		&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.FirstName, &a.LastName, &a.Enabled,
		&a.VerificationToken, &a.VerificationTokenExpiry, &a.VerificationAttempts.Count, &a.VerificationAttempts.WindowStart,
		&a.ResetToken, &a.ResetTokenExpiry, &a.ResetAttempts.Count, &a.ResetAttempts.WindowStart,
		&a.Version, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	return r.findOne(ctx, "WHERE id = $1", id)
}

func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	return r.findOne(ctx, "WHERE username = $1", username)
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.findOne(ctx, "WHERE lower(email) = lower($1)", email)
}

func (r *PostgresRepository) FindByVerificationToken(ctx context.Context, token string) (*models.Account, error) {
	return r.findOne(ctx, "WHERE verification_token = $1", token)
}

func (r *PostgresRepository) FindByResetToken(ctx context.Context, token string) (*models.Account, error) {
	return r.findOne(ctx, "WHERE reset_token = $1", token)
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Account) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query := `
		INSERT INTO accounts (id, username, email, password_hash, first_name, last_name, enabled,
			verification_token, verification_token_expiry, verification_attempts, verification_window_start,
			reset_token, reset_token_expiry, reset_attempts, reset_window_start)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING version, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		a.ID, a.Username, a.Email, a.PasswordHash, a.FirstName, a.LastName, a.Enabled,
		a.VerificationToken, a.VerificationTokenExpiry, a.VerificationAttempts.Count, a.VerificationAttempts.WindowStart,
		a.ResetToken, a.ResetTokenExpiry, a.ResetAttempts.Count, a.ResetAttempts.WindowStart,
	).Scan(&a.Version, &a.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Update writes every mutable column, guarded by the version read earlier.
// On success a.Version is advanced to match the row.
func (r *PostgresRepository) Update(ctx context.Context, a *models.Account) error {
	query := `
		UPDATE accounts SET
			username = $1, email = $2, password_hash = $3, first_name = $4, last_name = $5, enabled = $6,
			verification_token = $7, verification_token_expiry = $8, verification_attempts = $9, verification_window_start = $10,
			reset_token = $11, reset_token_expiry = $12, reset_attempts = $13, reset_window_start = $14,
			version = version + 1
		WHERE id = $15 AND version = $16
	`
	res, err := r.db.ExecContext(ctx, query,
		a.Username, a.Email, a.PasswordHash, a.FirstName, a.LastName, a.Enabled,
		a.VerificationToken, a.VerificationTokenExpiry, a.VerificationAttempts.Count, a.VerificationAttempts.WindowStart,
		a.ResetToken, a.ResetTokenExpiry, a.ResetAttempts.Count, a.ResetAttempts.WindowStart,
		a.ID, a.Version,
	)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.ErrAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		a.Version++
		return nil
	case 0:
		return common.ErrVersionConflict
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
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

// DeleteByEmail removes the account with the given email, if any.
func (r *PostgresRepository) DeleteByEmail(ctx context.Context, email string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE lower(email) = lower($1)`, email); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
