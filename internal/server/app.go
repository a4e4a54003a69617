// Package server wires the task planner together: configuration, the
// PostgreSQL pool and migrations, account and planning services, and the
// gRPC and HTTP front ends, and runs them until a termination signal.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/taskplanner/internal/logging"
	"github.com/dmitrijs2005/taskplanner/internal/server/config"
	"github.com/dmitrijs2005/taskplanner/internal/server/limiter"
	"github.com/dmitrijs2005/taskplanner/internal/server/notify"
	"github.com/dmitrijs2005/taskplanner/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskplanner/internal/server/services"
	"github.com/dmitrijs2005/taskplanner/internal/server/throttle"
	"github.com/dmitrijs2005/taskplanner/internal/server/tokens"
	"github.com/dmitrijs2005/taskplanner/internal/server/web"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/taskplanner/internal/server/grpc"
)

const pingTimeout = 5 * time.Second

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	redis     *redis.Client
	throttle  *throttle.Throttle
	accounts  *services.AccountService
	tasks     *services.TaskService
	curricula *services.CurriculumService
	projects  *services.ProjectService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	sender, err := newMailSender(ctx, c, os.Stderr, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	mailer := notify.NewMailer(sender, c.PublicBaseURL)

	issuer := tokens.NewIssuer(c.VerificationTokenValidityDuration, c.ResetTokenValidityDuration, nil)
	lim := limiter.New(c.MaxAttempts, c.AttemptWindow)

	app := &App{
		config:    c,
		logger:    logger,
		db:        db,
		accounts:  services.NewAccountService(db, m, issuer, lim, mailer, c, logger),
		tasks:     services.NewTaskService(db, m, logger),
		curricula: services.NewCurriculumService(db, m, logger),
		projects:  services.NewProjectService(db, m, logger),
	}

	if c.RedisAddr != "" {
		app.redis = redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		app.throttle = throttle.New(app.redis, c.ThrottleLimit, c.ThrottleWindow)
	}

	return app, nil
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return db, nil
}

// newMailSender picks the outbound mail transport named by MailDriver.
func newMailSender(ctx context.Context, c *config.Config, w io.Writer, l logging.Logger) (notify.Sender, error) {
	switch c.MailDriver {
	case "", "log":
		l.Warn(ctx, "mail driver \"log\" prints verification and reset links to stderr, use \"ses\" outside development")
		return notify.NewLogSender(w, l), nil
	case "ses":
		s, err := notify.NewSESSender(ctx, notify.SESConfig{
			Region:    c.SESRegion,
			AccessKey: c.SESAccessKey,
			SecretKey: c.SESSecretKey,
			Endpoint:  c.SESEndpoint,
			From:      c.MailFrom,
		})
		if err != nil {
			return nil, fmt.Errorf("ses init error: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", c.MailDriver)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	var th gs.Throttle
	if app.throttle != nil {
		th = app.throttle
	}

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, gs.Services{
		Accounts:  app.accounts,
		Tasks:     app.tasks,
		Curricula: app.curricula,
		Projects:  app.projects,
	}, app.config.SecretKey, th)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	var th web.Throttle
	if app.throttle != nil {
		th = app.throttle
	}

	s := web.NewServer(app.config.EndpointAddrHTTP, app.logger, app.accounts, th)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close(ctx)
}

func (app *App) close(ctx context.Context) {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Warn(ctx, "redis close error", "error", err.Error())
		}
	}
	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "db close error", "error", err.Error())
	}
	app.logger.Info(ctx, "App stopped")
}
