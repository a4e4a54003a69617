package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/taskplanner/internal/dbx"
	"github.com/dmitrijs2005/taskplanner/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/taskplanner/internal/server/repositories/associations"
	"github.com/dmitrijs2005/taskplanner/internal/server/repositories/curricula"
	"github.com/dmitrijs2005/taskplanner/internal/server/repositories/projects"
	"github.com/dmitrijs2005/taskplanner/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/taskplanner/internal/server/repositories/tasks"
)

// RepositoryManager hands out repositories bound to a connection or an
// open transaction, so a service can run several of them atomically.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	Curricula(db dbx.DBTX) curricula.Repository
	Associations(db dbx.DBTX) associations.Repository
	Projects(db dbx.DBTX) projects.Repository
}
