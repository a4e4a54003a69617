// Package grpc exposes the planner services over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/taskplanner/internal/logging"
	pb "github.com/dmitrijs2005/taskplanner/internal/proto"
	"github.com/dmitrijs2005/taskplanner/internal/server/models"
	"github.com/dmitrijs2005/taskplanner/internal/server/services"
	"google.golang.org/grpc"
)

type AccountService interface {
	Register(ctx context.Context, in services.Registration) (*models.Account, error)
	Verify(ctx context.Context, token string) (*services.TokenPair, error)
	ResendVerification(ctx context.Context, email string) error
	InitiatePasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	Login(ctx context.Context, username, password string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	GetProfile(ctx context.Context, actorID string) (*models.Account, error)
	UpdateProfile(ctx context.Context, actorID string, in services.ProfileUpdate) (*models.Account, error)
	DeleteAccount(ctx context.Context, actorID string) error
}

type TaskService interface {
	Create(ctx context.Context, actorID string, in services.NewTask) (*models.Task, error)
	List(ctx context.Context, actorID string) ([]*models.Task, error)
	Get(ctx context.Context, actorID, taskID string) (*models.Task, error)
	Update(ctx context.Context, actorID, taskID string, in services.TaskUpdate) (*models.Task, error)
	UpdateStatus(ctx context.Context, actorID, taskID, status string) (*models.Task, error)
	AssignToProject(ctx context.Context, actorID, taskID, projectID string) (*models.Task, error)
	Delete(ctx context.Context, actorID, taskID string) error
}

type CurriculumService interface {
	Create(ctx context.Context, actorID, title string) (*models.Curriculum, error)
	Current(ctx context.Context, actorID string) (*models.Curriculum, error)
	Update(ctx context.Context, actorID, title string) (*models.Curriculum, error)
	Delete(ctx context.Context, actorID string) error
	AddTask(ctx context.Context, actorID, taskID string, start, end time.Time) (*models.Association, error)
	UpdateTaskDates(ctx context.Context, actorID, taskID string, start, end time.Time) (*models.Association, error)
	RemoveTask(ctx context.Context, actorID, taskID string) error
}

type ProjectService interface {
	Create(ctx context.Context, actorID, title, description string) (*models.Project, error)
	List(ctx context.Context, actorID string) ([]*models.Project, error)
	Get(ctx context.Context, actorID, projectID string) (*models.Project, error)
	Update(ctx context.Context, actorID, projectID, title, description string) (*models.Project, error)
	Delete(ctx context.Context, actorID, projectID string) error
	Invite(ctx context.Context, actorID, projectID, username string) (*models.Project, error)
}

// Throttle counts calls per scope and key and refuses them once a budget is
// spent.
type Throttle interface {
	Allow(ctx context.Context, scope, key string) error
}

type Services struct {
	Accounts  AccountService
	Tasks     TaskService
	Curricula CurriculumService
	Projects  ProjectService
}

type GRPCServer struct {
	pb.UnimplementedPlannerServiceServer
	address   string
	accounts  AccountService
	tasks     TaskService
	curricula CurriculumService
	projects  ProjectService
	throttle  Throttle
	logger    logging.Logger
	jwtSecret []byte
}

// NewGRPCServer builds a server listening on a. A nil throttle disables
// per-address limits on public methods.
func NewGRPCServer(a string, l logging.Logger, svc Services, secretKey string, t Throttle) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		accounts:  svc.Accounts,
		tasks:     svc.Tasks,
		curricula: svc.Curricula,
		projects:  svc.Projects,
		throttle:  t,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.loggingInterceptor,
		s.throttleInterceptor,
		s.accessTokenInterceptor,
	))
	pb.RegisterPlannerServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
