package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	out      strings.Builder
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) output(format string, args ...any) {
	fmt.Fprintf(&f.out, format, args...)
}

func (f *fakeExec) rec(name string) func(context.Context) error {
	return func(context.Context) error {
		f.calls = append(f.calls, name)
		return nil
	}
}

func (f *fakeExec) Register(ctx context.Context) error           { return f.rec("register")(ctx) }
func (f *fakeExec) Verify(ctx context.Context) error             { return f.rec("verify")(ctx) }
func (f *fakeExec) ResendVerification(ctx context.Context) error { return f.rec("resend")(ctx) }
func (f *fakeExec) ForgotPassword(ctx context.Context) error     { return f.rec("forgot")(ctx) }
func (f *fakeExec) ResetPassword(ctx context.Context) error      { return f.rec("reset")(ctx) }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.rec("login")(ctx)
}
func (f *fakeExec) WhoAmI(ctx context.Context) error         { return f.rec("whoami")(ctx) }
func (f *fakeExec) ListTasks(ctx context.Context) error      { return f.rec("tasks")(ctx) }
func (f *fakeExec) AddTask(ctx context.Context) error        { return f.rec("addtask")(ctx) }
func (f *fakeExec) SetTaskStatus(ctx context.Context) error  { return f.rec("status")(ctx) }
func (f *fakeExec) DeleteTask(ctx context.Context) error     { return f.rec("deltask")(ctx) }
func (f *fakeExec) ShowCurriculum(ctx context.Context) error { return f.rec("curriculum")(ctx) }
func (f *fakeExec) NewCurriculum(ctx context.Context) error  { return f.rec("newcurriculum")(ctx) }
func (f *fakeExec) Plan(ctx context.Context) error           { return f.rec("plan")(ctx) }
func (f *fakeExec) Unplan(ctx context.Context) error         { return f.rec("unplan")(ctx) }
func (f *fakeExec) ListProjects(ctx context.Context) error   { return f.rec("projects")(ctx) }
func (f *fakeExec) NewProject(ctx context.Context) error     { return f.rec("newproject")(ctx) }
func (f *fakeExec) Invite(ctx context.Context) error         { return f.rec("invite")(ctx) }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.rec("logout")(ctx)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"tasks",
		"login",
		"help",
		"",
		"tasks",
		"addtask",
		"plan",
		"foobar",
		"logout",
		"exit",
		"register",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input))

	assert.Equal(t, []string{"login", "tasks", "addtask", "plan", "logout"}, exec.calls)

	out := exec.out.String()
	assert.Contains(t, out, guestHelp)
	assert.Contains(t, out, memberHelp)
	assert.Contains(t, out, "Please login first")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "tp status> ")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("verify\nforgot"))

	assert.Equal(t, []string{"verify", "forgot"}, exec.calls)
}
