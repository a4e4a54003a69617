// Package projects stores projects and their member lists.
package projects

import (
	"context"

	"github.com/dmitrijs2005/taskplanner/internal/server/models"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*models.Project, error)
	// FindAllForAccount lists projects the account owns or is a member of.
	FindAllForAccount(ctx context.Context, accountID string) ([]*models.Project, error)

	// Create stores the project and registers the owner as its first member.
	Create(ctx context.Context, p *models.Project) error
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id string) error
	AddMember(ctx context.Context, projectID, accountID string) error
}
