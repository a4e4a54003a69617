package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dmitrijs2005/taskplanner/internal/common"
	"github.com/dmitrijs2005/taskplanner/internal/dbx"
	"github.com/dmitrijs2005/taskplanner/internal/logging"
	"github.com/dmitrijs2005/taskplanner/internal/server/models"
	"github.com/dmitrijs2005/taskplanner/internal/server/repositories/repomanager"
)

// ProjectService manages shared projects. Members may read and edit a
// project; only the owner may delete it.
type ProjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewProjectService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *ProjectService {
	return &ProjectService{db: db, repomanager: m, logger: l.With("module", "projects")}
}

func checkProject(title, description string) error {
	if err := checkLength("title", title, 1, maxFieldLength); err != nil {
		return err
	}
	return checkLength("description", description, 0, maxFieldLength)
}

func (s *ProjectService) Create(ctx context.Context, actorID, title, description string) (*models.Project, error) {
	p := &models.Project{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		OwnerID:     actorID,
	}
	if err := checkProject(p.Title, p.Description); err != nil {
		return nil, err
	}
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Projects(tx).Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "project created", "project_id", p.ID, "account_id", actorID)
	return p, nil
}

func (s *ProjectService) List(ctx context.Context, actorID string) ([]*models.Project, error) {
	return s.repomanager.Projects(s.db).FindAllForAccount(ctx, actorID)
}

func (s *ProjectService) Get(ctx context.Context, actorID, projectID string) (*models.Project, error) {
	return s.loadForMember(ctx, s.db, actorID, projectID)
}

func (s *ProjectService) Update(ctx context.Context, actorID, projectID, title, description string) (*models.Project, error) {
	title, description = strings.TrimSpace(title), strings.TrimSpace(description)
	if err := checkProject(title, description); err != nil {
		return nil, err
	}

	p, err := s.loadForMember(ctx, s.db, actorID, projectID)
	if err != nil {
		return nil, err
	}
	p.Title, p.Description = title, description
	if err := s.repomanager.Projects(s.db).Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the project and every task in it.
func (s *ProjectService) Delete(ctx context.Context, actorID, projectID string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		p, err := s.loadForMember(ctx, tx, actorID, projectID)
		if err != nil {
			return err
		}
		if p.OwnerID != actorID {
			return common.ErrorForbidden
		}
		return s.repomanager.Projects(tx).Delete(ctx, projectID)
	})
}

// Invite adds the account with the given username to the project.
func (s *ProjectService) Invite(ctx context.Context, actorID, projectID, username string) (*models.Project, error) {
	var p *models.Project
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		if p, err = s.loadForMember(ctx, tx, actorID, projectID); err != nil {
			return err
		}
		invitee, err := s.repomanager.Accounts(tx).FindByUsername(ctx, strings.TrimSpace(username))
		if err != nil {
			return err
		}
		if p.HasMember(invitee.ID) {
			return nil
		}
		if err := s.repomanager.Projects(tx).AddMember(ctx, p.ID, invitee.ID); err != nil {
			return err
		}
		p.MemberIDs = append(p.MemberIDs, invitee.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) loadForMember(ctx context.Context, db dbx.DBTX, actorID, projectID string) (*models.Project, error) {
	p, err := s.repomanager.Projects(db).FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !p.HasMember(actorID) {
		return nil, common.ErrorForbidden
	}
	return p, nil
}
