// Package curricula declares and implements persistent storage for curricula.
package curricula

import (
	"context"

	"github.com/dmitrijs2005/taskplanner/internal/server/models"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*models.Curriculum, error)
	// FindAllByID returns the curricula that exist, silently skipping unknown ids.
	FindAllByID(ctx context.Context, ids []string) ([]*models.Curriculum, error)
	FindByAccount(ctx context.Context, accountID string) (*models.Curriculum, error)

	// Create fails with common.ErrAlreadyExists when the account already has one.
	Create(ctx context.Context, c *models.Curriculum) error
	Update(ctx context.Context, c *models.Curriculum) error
	Delete(ctx context.Context, id string) error
}
