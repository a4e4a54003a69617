package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	output(format string, args ...any)

	Register(ctx context.Context) error
	Verify(ctx context.Context) error
	ResendVerification(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Login(ctx context.Context) error

	WhoAmI(ctx context.Context) error
	ListTasks(ctx context.Context) error
	AddTask(ctx context.Context) error
	SetTaskStatus(ctx context.Context) error
	DeleteTask(ctx context.Context) error
	ShowCurriculum(ctx context.Context) error
	NewCurriculum(ctx context.Context) error
	Plan(ctx context.Context) error
	Unplan(ctx context.Context) error
	ListProjects(ctx context.Context) error
	NewProject(ctx context.Context) error
	Invite(ctx context.Context) error
	Logout(ctx context.Context) error
}

const (
	guestHelp  = "Available commands: register, verify, resend, forgot, reset, login, exit"
	memberHelp = "Available commands: whoami, tasks, addtask, status, deltask, curriculum, newcurriculum, plan, unplan, projects, newproject, invite, logout, exit"
)

// runREPL reads one command per line and dispatches it to a. Account
// commands are available to guests, planner commands only after login.
// Handler errors are already reported to the user, so the loop ignores them.
// The loop ends on EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		a.output("tp %s> ", statusFn())
		// commands prompt on the same reader, so no read-ahead here
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if cmd == "exit" || cmd == "quit" {
			a.output("Bye!\n")
			return
		}
		if cmd == "help" {
			if a.isLoggedIn() {
				a.output("%s\n", memberHelp)
			} else {
				a.output("%s\n", guestHelp)
			}
			continue
		}

		run, ok := guestCommands(a)[cmd]
		if !ok {
			if run, ok = memberCommands(a)[cmd]; ok && !a.isLoggedIn() {
				a.output("Please login first\n")
				continue
			}
		}
		if !ok {
			a.output("Unknown command: %s\n", cmd)
			continue
		}
		_ = run(ctx)
	}
}

func guestCommands(a execIface) map[string]func(context.Context) error {
	return map[string]func(context.Context) error{
		"register": a.Register,
		"verify":   a.Verify,
		"resend":   a.ResendVerification,
		"forgot":   a.ForgotPassword,
		"reset":    a.ResetPassword,
		"login":    a.Login,
	}
}

func memberCommands(a execIface) map[string]func(context.Context) error {
	return map[string]func(context.Context) error{
		"whoami":        a.WhoAmI,
		"tasks":         a.ListTasks,
		"l":             a.ListTasks,
		"addtask":       a.AddTask,
		"status":        a.SetTaskStatus,
		"deltask":       a.DeleteTask,
		"curriculum":    a.ShowCurriculum,
		"newcurriculum": a.NewCurriculum,
		"plan":          a.Plan,
		"unplan":        a.Unplan,
		"projects":      a.ListProjects,
		"newproject":    a.NewProject,
		"invite":        a.Invite,
		"logout":        a.Logout,
	}
}

func (a *App) output(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
