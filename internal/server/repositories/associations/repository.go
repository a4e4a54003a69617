// Package associations stores the dated links between tasks and curricula.
package associations

import (
	"context"

	"github.com/dmitrijs2005/taskplanner/internal/server/models"
)

type Repository interface {
	FindByCurriculumAndTask(ctx context.Context, curriculumID, taskID string) (*models.Association, error)
	FindAllByTask(ctx context.Context, taskID string) ([]*models.Association, error)
	FindAllByCurriculum(ctx context.Context, curriculumID string) ([]*models.Association, error)

	Create(ctx context.Context, a *models.Association) error
	// Update rewrites the dates of a link, checking and bumping its version.
	Update(ctx context.Context, a *models.Association) error
	DeleteAll(ctx context.Context, ids []string) error
}
