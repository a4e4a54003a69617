// Package reconcile keeps the curriculum links of a task in step with the
// set of curricula the task should appear in.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskplanner/internal/common"
	"github.com/dmitrijs2005/taskplanner/internal/server/models"
)

type AssociationStore interface {
	FindByCurriculumAndTask(ctx context.Context, curriculumID, taskID string) (*models.Association, error)
	FindAllByTask(ctx context.Context, taskID string) ([]*models.Association, error)
	Create(ctx context.Context, a *models.Association) error
	Update(ctx context.Context, a *models.Association) error
	DeleteAll(ctx context.Context, ids []string) error
}

type CurriculumStore interface {
	FindByID(ctx context.Context, id string) (*models.Curriculum, error)
	FindAllByID(ctx context.Context, ids []string) ([]*models.Curriculum, error)
}

type TaskStore interface {
	FindByID(ctx context.Context, id string) (*models.Task, error)
}

// Reconciler works on whatever stores it is given; bind them to one
// transaction to make a call atomic.
type Reconciler struct {
	associations AssociationStore
	curricula    CurriculumStore
	tasks        TaskStore
}

func New(a AssociationStore, c CurriculumStore, t TaskStore) *Reconciler {
	return &Reconciler{associations: a, curricula: c, tasks: t}
}

// Reconcile makes the task linked to exactly the known curricula among
// desired, each link carrying the task's own dates. Unknown curriculum ids
// are skipped. On return task.Associations holds the live links.
func (r *Reconciler) Reconcile(ctx context.Context, task *models.Task, desired []string) error {
	current, err := r.associations.FindAllByTask(ctx, task.ID)
	if err != nil {
		return fmt.Errorf("load links: %w", err)
	}

	if len(desired) == 0 {
		if err := r.associations.DeleteAll(ctx, ids(current)); err != nil {
			return fmt.Errorf("delete links: %w", err)
		}
		task.Associations = nil
		return nil
	}

	resolved, err := r.curricula.FindAllByID(ctx, unique(desired))
	if err != nil {
		return fmt.Errorf("resolve curricula: %w", err)
	}
	wanted := make(map[string]bool, len(resolved))
	for _, c := range resolved {
		wanted[c.ID] = true
	}

	kept := make(map[string]*models.Association, len(current))
	var stale []string
	for _, a := range current {
		if _, dup := kept[a.CurriculumID]; dup || !wanted[a.CurriculumID] {
			stale = append(stale, a.ID)
			continue
		}
		kept[a.CurriculumID] = a
	}

	if err := r.associations.DeleteAll(ctx, stale); err != nil {
		return fmt.Errorf("delete links: %w", err)
	}

	links := make([]*models.Association, 0, len(resolved))
	for _, c := range resolved {
		if a, ok := kept[c.ID]; ok {
			if !sameDay(a.StartDate, task.StartDate) || !sameDay(a.EndDate, task.EndDate) {
				a.StartDate, a.EndDate = task.StartDate, task.EndDate
				if err := r.associations.Update(ctx, a); err != nil {
					return fmt.Errorf("update link: %w", err)
				}
			}
			links = append(links, a)
			continue
		}

		a := &models.Association{
			TaskID:       task.ID,
			CurriculumID: c.ID,
			StartDate:    task.StartDate,
			EndDate:      task.EndDate,
		}
		if err := r.associations.Create(ctx, a); err != nil {
			return fmt.Errorf("create link: %w", err)
		}
		links = append(links, a)
	}

	task.Associations = links
	return nil
}

// AddToCurriculum links a task to a curriculum for the given window.
func (r *Reconciler) AddToCurriculum(ctx context.Context, curriculumID, taskID string, start, end time.Time) (*models.Association, error) {
	if err := checkWindow(start, end); err != nil {
		return nil, err
	}
	if _, err := r.curricula.FindByID(ctx, curriculumID); err != nil {
		return nil, err
	}
	if _, err := r.tasks.FindByID(ctx, taskID); err != nil {
		return nil, err
	}

	_, err := r.associations.FindByCurriculumAndTask(ctx, curriculumID, taskID)
	switch {
	case err == nil:
		return nil, common.ErrAlreadyExists
	case !errors.Is(err, common.ErrorNotFound):
		return nil, err
	}

	a := &models.Association{TaskID: taskID, CurriculumID: curriculumID, StartDate: start, EndDate: end}
	if err := r.associations.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateDates moves an existing link to a new window.
func (r *Reconciler) UpdateDates(ctx context.Context, curriculumID, taskID string, start, end time.Time) (*models.Association, error) {
	if err := checkWindow(start, end); err != nil {
		return nil, err
	}
	a, err := r.associations.FindByCurriculumAndTask(ctx, curriculumID, taskID)
	if err != nil {
		return nil, err
	}
	a.StartDate, a.EndDate = start, end
	if err := r.associations.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *Reconciler) Remove(ctx context.Context, curriculumID, taskID string) error {
	a, err := r.associations.FindByCurriculumAndTask(ctx, curriculumID, taskID)
	if err != nil {
		return err
	}
	return r.associations.DeleteAll(ctx, []string{a.ID})
}

func checkWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", common.ErrorValidation)
	}
	if start.After(end) {
		return fmt.Errorf("%w: start date is after end date", common.ErrorValidation)
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func ids(list []*models.Association) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func unique(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
