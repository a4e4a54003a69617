package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/taskplanner/internal/client/client"
	"github.com/dmitrijs2005/taskplanner/internal/client/config"
	pb "github.com/dmitrijs2005/taskplanner/internal/proto"
)

// API is the part of the gRPC client the commands use.
type API interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error)
	Verify(ctx context.Context, token string) error
	ResendVerification(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	LoggedIn() bool
	Profile(ctx context.Context) (*pb.Profile, error)

	CreateTask(ctx context.Context, req *pb.CreateTaskRequest) (*pb.Task, error)
	ListTasks(ctx context.Context) ([]*pb.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID, status string) (*pb.Task, error)
	DeleteTask(ctx context.Context, taskID string) error

	CreateCurriculum(ctx context.Context, title string) (*pb.Curriculum, error)
	Curriculum(ctx context.Context) (*pb.Curriculum, error)
	AddToCurriculum(ctx context.Context, req *pb.CurriculumTaskRequest) (*pb.Association, error)
	RemoveFromCurriculum(ctx context.Context, taskID string) error

	CreateProject(ctx context.Context, title, description string) (*pb.Project, error)
	ListProjects(ctx context.Context) ([]*pb.Project, error)
	Invite(ctx context.Context, projectID, username string) (*pb.Project, error)

	Close() error
}

type App struct {
	config   *config.Config
	api      API
	reader   *bufio.Reader
	out      io.Writer
	userName string
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	fmt.Fprintln(a.out, "Welcome to the task planner (type 'help' for commands)")

	pctx, cancel := a.callContext(ctx)
	if err := a.api.Ping(pctx); err != nil {
		fmt.Fprintf(a.out, "Server %s is not reachable: %v\n", a.config.ServerEndpointAddr, err)
	}
	cancel()

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.api.LoggedIn()
}

func (a *App) getStatus() string {
	if a.isLoggedIn() && a.userName != "" {
		return "(" + a.userName + ")"
	}
	return "(guest)"
}

// callContext bounds a single server call by the configured timeout.
func (a *App) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) ask(prompt string) (string, error) {
	return GetSimpleText(a.reader, prompt, a.out)
}

// report prints err for the user and hands it back to the caller.
func (a *App) report(err error) error {
	fmt.Fprintf(a.out, "Error: %v\n", err)
	return err
}
