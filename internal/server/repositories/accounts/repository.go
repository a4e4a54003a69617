// Package accounts declares and implements persistent storage for accounts.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/taskplanner/internal/server/models"
)

// Repository is the account store. Lookups return common.ErrorNotFound when
// nothing matches; Update returns common.ErrVersionConflict when the row was
// changed since it was read.
type Repository interface {
	FindByID(ctx context.Context, id string) (*models.Account, error)
	FindByUsername(ctx context.Context, username string) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByVerificationToken(ctx context.Context, token string) (*models.Account, error)
	FindByResetToken(ctx context.Context, token string) (*models.Account, error)

	// Create assigns an id when empty. Duplicate username or email yields
	// common.ErrAlreadyExists.
	Create(ctx context.Context, account *models.Account) error
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id string) error
	DeleteByEmail(ctx context.Context, email string) error
}
