package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskplanner/internal/common"
	"github.com/dmitrijs2005/taskplanner/internal/dbx"
	"github.com/dmitrijs2005/taskplanner/internal/logging"
	"github.com/dmitrijs2005/taskplanner/internal/server/models"
	"github.com/dmitrijs2005/taskplanner/internal/server/reconcile"
	"github.com/dmitrijs2005/taskplanner/internal/server/repositories/repomanager"
)

type NewTask struct {
	Title         string
	Description   string
	StartDate     time.Time
	EndDate       time.Time
	Status        string
	ProjectID     *string
	CurriculumIDs []string
}

// TaskUpdate changes a task. Nil scalar fields keep their value. ProjectID
// and CurriculumIDs always replace the current state, so nil detaches the
// task from its project and from every curriculum. A non-nil Version must
// match the stored one.
type TaskUpdate struct {
	Title         *string
	Description   *string
	StartDate     *time.Time
	EndDate       *time.Time
	Status        *string
	ProjectID     *string
	CurriculumIDs []string
	AssigneeIDs   []string
	Version       *int64
}

type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *TaskService {
	return &TaskService{db: db, repomanager: m, logger: l.With("module", "tasks")}
}

func (s *TaskService) reconciler(tx dbx.DBTX) *reconcile.Reconciler {
	return reconcile.New(s.repomanager.Associations(tx), s.repomanager.Curricula(tx), s.repomanager.Tasks(tx))
}

// Create stores a task assigned to its creator and links it to the given
// curricula.
func (s *TaskService) Create(ctx context.Context, actorID string, in NewTask) (*models.Task, error) {
	status, err := models.ParseTaskStatus(in.Status)
	if err != nil {
		return nil, invalid("%v", err)
	}
	task := &models.Task{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      status,
		ProjectID:   in.ProjectID,
	}
	if err := checkTask(task); err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		actor, err := s.repomanager.Accounts(tx).FindByID(ctx, actorID)
		if err != nil {
			return err
		}
		if task.ProjectID != nil {
			if err := s.requireProjectMember(ctx, tx, *task.ProjectID, actorID); err != nil {
				return err
			}
		}

		task.Creator = actor.Username
		repo := s.repomanager.Tasks(tx)
		if err := repo.Create(ctx, task); err != nil {
			return err
		}
		task.AssigneeIDs = []string{actorID}
		if err := repo.SetAssignees(ctx, task.ID, task.AssigneeIDs); err != nil {
			return err
		}
		if len(in.CurriculumIDs) == 0 {
			return nil
		}
		return s.reconciler(tx).Reconcile(ctx, task, in.CurriculumIDs)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "task created", "task_id", task.ID, "account_id", actorID)
	return task, nil
}

// List returns the tasks the actor is assigned to or can see through a
// project, with their curriculum links.
func (s *TaskService) List(ctx context.Context, actorID string) ([]*models.Task, error) {
	list, err := s.repomanager.Tasks(s.db).FindAllVisibleTo(ctx, actorID)
	if err != nil {
		return nil, err
	}
	links := s.repomanager.Associations(s.db)
	for _, t := range list {
		if t.Associations, err = links.FindAllByTask(ctx, t.ID); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (s *TaskService) Get(ctx context.Context, actorID, taskID string) (*models.Task, error) {
	task, err := s.loadAccessible(ctx, s.db, actorID, taskID)
	if err != nil {
		return nil, err
	}
	if task.Associations, err = s.repomanager.Associations(s.db).FindAllByTask(ctx, task.ID); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, actorID, taskID string, in TaskUpdate) (*models.Task, error) {
	var task *models.Task
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		task, err = s.loadAccessible(ctx, tx, actorID, taskID)
		if err != nil {
			return err
		}
		if in.Version != nil && *in.Version != task.Version {
			return common.ErrVersionConflict
		}

		if in.Title != nil {
			task.Title = strings.TrimSpace(*in.Title)
		}
		if in.Description != nil {
			task.Description = strings.TrimSpace(*in.Description)
		}
		if in.StartDate != nil {
			task.StartDate = *in.StartDate
		}
		if in.EndDate != nil {
			task.EndDate = *in.EndDate
		}
		if in.Status != nil {
			if task.Status, err = models.ParseTaskStatus(*in.Status); err != nil {
				return invalid("%v", err)
			}
		}
		if err := checkTask(task); err != nil {
			return err
		}

		if in.ProjectID != nil && !sameProject(task.ProjectID, in.ProjectID) {
			if err := s.requireProjectMember(ctx, tx, *in.ProjectID, actorID); err != nil {
				return err
			}
		}
		task.ProjectID = in.ProjectID

		repo := s.repomanager.Tasks(tx)
		if err := repo.Update(ctx, task); err != nil {
			return err
		}
		if in.AssigneeIDs != nil {
			ids := dedupe(in.AssigneeIDs)
			if err := repo.SetAssignees(ctx, task.ID, ids); err != nil {
				return err
			}
			task.AssigneeIDs = ids
		}
		return s.reconciler(tx).Reconcile(ctx, task, in.CurriculumIDs)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) UpdateStatus(ctx context.Context, actorID, taskID, status string) (*models.Task, error) {
	parsed, err := models.ParseTaskStatus(status)
	if err != nil {
		return nil, invalid("%v", err)
	}

	var task *models.Task
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		if task, err = s.loadAccessible(ctx, tx, actorID, taskID); err != nil {
			return err
		}
		task.Status = parsed
		return s.repomanager.Tasks(tx).Update(ctx, task)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// AssignToProject moves the task into a project. Curriculum links are kept.
func (s *TaskService) AssignToProject(ctx context.Context, actorID, taskID, projectID string) (*models.Task, error) {
	var task *models.Task
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		if task, err = s.loadAccessible(ctx, tx, actorID, taskID); err != nil {
			return err
		}
		if err := s.requireProjectMember(ctx, tx, projectID, actorID); err != nil {
			return err
		}
		task.ProjectID = &projectID
		return s.repomanager.Tasks(tx).Update(ctx, task)
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, actorID, taskID string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.loadAccessible(ctx, tx, actorID, taskID); err != nil {
			return err
		}
		return s.repomanager.Tasks(tx).Delete(ctx, taskID)
	})
}

// loadAccessible returns the task if the actor is assigned to it or belongs
// to its project.
func (s *TaskService) loadAccessible(ctx context.Context, db dbx.DBTX, actorID, taskID string) (*models.Task, error) {
	task, err := s.repomanager.Tasks(db).FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := canAccessTask(ctx, s.repomanager, db, task, actorID); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) requireProjectMember(ctx context.Context, db dbx.DBTX, projectID, actorID string) error {
	p, err := s.repomanager.Projects(db).FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !p.HasMember(actorID) {
		return common.ErrorForbidden
	}
	return nil
}

func canAccessTask(ctx context.Context, m repomanager.RepositoryManager, db dbx.DBTX, task *models.Task, actorID string) error {
	if task.IsAssignee(actorID) {
		return nil
	}
	if task.ProjectID == nil {
		return common.ErrorForbidden
	}
	p, err := m.Projects(db).FindByID(ctx, *task.ProjectID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorForbidden
		}
		return err
	}
	if !p.HasMember(actorID) {
		return common.ErrorForbidden
	}
	return nil
}

func checkTask(t *models.Task) error {
	if err := checkLength("title", t.Title, 5, maxFieldLength); err != nil {
		return err
	}
	if err := checkLength("description", t.Description, 0, maxFieldLength); err != nil {
		return err
	}
	return checkDates(t.StartDate, t.EndDate)
}

func sameProject(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func dedupe(in []string) []string {
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
