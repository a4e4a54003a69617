// Package tasks declares and implements persistent storage for tasks and
// their direct assignees.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskplanner/internal/server/models"
)

// Repository is the task store. Task rows returned by it carry AssigneeIDs
// but never Associations; those are loaded through the associations store.
type Repository interface {
	FindByID(ctx context.Context, id string) (*models.Task, error)
	// FindAllByID returns the tasks that exist, silently skipping unknown ids.
	FindAllByID(ctx context.Context, ids []string) ([]*models.Task, error)
	// FindAllVisibleTo returns tasks assigned to the account or belonging to
	// a project the account owns or is a member of.
	FindAllVisibleTo(ctx context.Context, accountID string) ([]*models.Task, error)

	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
	// SetAssignees replaces the assignee set of the task.
	SetAssignees(ctx context.Context, taskID string, accountIDs []string) error
}
