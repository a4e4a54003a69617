package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskplanner/internal/dbx"
	"github.com/dmitrijs2005/taskplanner/internal/logging"
	"github.com/dmitrijs2005/taskplanner/internal/server/models"
	"github.com/dmitrijs2005/taskplanner/internal/server/reconcile"
	"github.com/dmitrijs2005/taskplanner/internal/server/repositories/repomanager"
)

// CurriculumService manages the single curriculum of the acting account and
// the tasks scheduled in it.
type CurriculumService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewCurriculumService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *CurriculumService {
	return &CurriculumService{db: db, repomanager: m, logger: l.With("module", "curricula")}
}

// Create fails with common.ErrAlreadyExists if the actor already has one.
func (s *CurriculumService) Create(ctx context.Context, actorID, title string) (*models.Curriculum, error) {
	title = strings.TrimSpace(title)
	if err := checkLength("title", title, 1, maxFieldLength); err != nil {
		return nil, err
	}
	c := &models.Curriculum{AccountID: actorID, Title: title}
	if err := s.repomanager.Curricula(s.db).Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Current returns the actor's curriculum with its task links.
func (s *CurriculumService) Current(ctx context.Context, actorID string) (*models.Curriculum, error) {
	c, err := s.repomanager.Curricula(s.db).FindByAccount(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if c.Associations, err = s.repomanager.Associations(s.db).FindAllByCurriculum(ctx, c.ID); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CurriculumService) Update(ctx context.Context, actorID, title string) (*models.Curriculum, error) {
	title = strings.TrimSpace(title)
	if err := checkLength("title", title, 1, maxFieldLength); err != nil {
		return nil, err
	}
	repo := s.repomanager.Curricula(s.db)
	c, err := repo.FindByAccount(ctx, actorID)
	if err != nil {
		return nil, err
	}
	c.Title = title
	if err := repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CurriculumService) Delete(ctx context.Context, actorID string) error {
	repo := s.repomanager.Curricula(s.db)
	c, err := repo.FindByAccount(ctx, actorID)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, c.ID)
}

// AddTask schedules a task the actor can see into the actor's curriculum.
func (s *CurriculumService) AddTask(ctx context.Context, actorID, taskID string, start, end time.Time) (*models.Association, error) {
	var link *models.Association
	err := s.withOwnCurriculum(ctx, actorID, taskID, func(ctx context.Context, r *reconcile.Reconciler, c *models.Curriculum) error {
		var err error
		link, err = r.AddToCurriculum(ctx, c.ID, taskID, start, end)
		return err
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

func (s *CurriculumService) UpdateTaskDates(ctx context.Context, actorID, taskID string, start, end time.Time) (*models.Association, error) {
	var link *models.Association
	err := s.withOwnCurriculum(ctx, actorID, taskID, func(ctx context.Context, r *reconcile.Reconciler, c *models.Curriculum) error {
		var err error
		link, err = r.UpdateDates(ctx, c.ID, taskID, start, end)
		return err
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

func (s *CurriculumService) RemoveTask(ctx context.Context, actorID, taskID string) error {
	return s.withOwnCurriculum(ctx, actorID, taskID, func(ctx context.Context, r *reconcile.Reconciler, c *models.Curriculum) error {
		return r.Remove(ctx, c.ID, taskID)
	})
}

func (s *CurriculumService) withOwnCurriculum(ctx context.Context, actorID, taskID string,
	fn func(ctx context.Context, r *reconcile.Reconciler, c *models.Curriculum) error) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		c, err := s.repomanager.Curricula(tx).FindByAccount(ctx, actorID)
		if err != nil {
			return err
		}
		task, err := s.repomanager.Tasks(tx).FindByID(ctx, taskID)
		if err != nil {
			return err
		}
		if err := canAccessTask(ctx, s.repomanager, tx, task, actorID); err != nil {
			return err
		}
		r := reconcile.New(s.repomanager.Associations(tx), s.repomanager.Curricula(tx), s.repomanager.Tasks(tx))
		return fn(ctx, r, c)
	})
}
