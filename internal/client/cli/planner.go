package cli

import (
	"context"
	"strings"

	pb "github.com/dmitrijs2005/taskplanner/internal/proto"
)

func (a *App) ListTasks(ctx context.Context) error {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	tasks, err := a.api.ListTasks(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(tasks) == 0 {
		a.output("No tasks\n")
		return nil
	}
	for _, t := range tasks {
		a.output("%s  [%s] %s  %s..%s\n", t.Id, t.Status, t.Title, t.StartDate, t.EndDate)
	}
	return nil
}

func (a *App) AddTask(ctx context.Context) error {
	req := &pb.CreateTaskRequest{}
	var err error

	if req.Title, err = a.ask("Title"); err != nil {
		return a.report(err)
	}
	if req.Description, err = GetOptionalText(a.reader, "Description", a.out); err != nil {
		return a.report(err)
	}
	if req.StartDate, err = a.ask("Start date (YYYY-MM-DD)"); err != nil {
		return a.report(err)
	}
	if req.EndDate, err = a.ask("End date (YYYY-MM-DD)"); err != nil {
		return a.report(err)
	}
	project, err := GetOptionalText(a.reader, "Project id", a.out)
	if err != nil {
		return a.report(err)
	}
	if project != "" {
		req.ProjectId = &project
	}
	if req.CurriculumIds, err = GetList(a.reader, "Curriculum ids", a.out); err != nil {
		return a.report(err)
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	t, err := a.api.CreateTask(ctx, req)
	if err != nil {
		return a.report(err)
	}
	a.output("Task %s created\n", t.Id)
	return nil
}

func (a *App) SetTaskStatus(ctx context.Context) error {
	id, err := a.ask("Task id")
	if err != nil {
		return a.report(err)
	}
	st, err := a.ask("Status (open, in_progress, done)")
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	t, err := a.api.UpdateTaskStatus(ctx, id, st)
	if err != nil {
		return a.report(err)
	}
	a.output("Task %s is now %s\n", t.Id, t.Status)
	return nil
}

func (a *App) DeleteTask(ctx context.Context) error {
	id, err := a.ask("Task id")
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if err := a.api.DeleteTask(ctx, id); err != nil {
		return a.report(err)
	}
	a.output("Task %s deleted\n", id)
	return nil
}

func (a *App) ShowCurriculum(ctx context.Context) error {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	c, err := a.api.Curriculum(ctx)
	if err != nil {
		return a.report(err)
	}
	a.output("%s  %s\n", c.Id, c.Title)
	for _, t := range c.Tasks {
		a.output("  %s  %s..%s\n", t.TaskId, t.StartDate, t.EndDate)
	}
	return nil
}

func (a *App) NewCurriculum(ctx context.Context) error {
	title, err := a.ask("Title")
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	c, err := a.api.CreateCurriculum(ctx, title)
	if err != nil {
		return a.report(err)
	}
	a.output("Curriculum %s created\n", c.Id)
	return nil
}

// Plan puts a task into the own curriculum for its own date window.
func (a *App) Plan(ctx context.Context) error {
	req := &pb.CurriculumTaskRequest{}
	var err error

	if req.TaskId, err = a.ask("Task id"); err != nil {
		return a.report(err)
	}
	if req.StartDate, err = a.ask("Start date (YYYY-MM-DD)"); err != nil {
		return a.report(err)
	}
	if req.EndDate, err = a.ask("End date (YYYY-MM-DD)"); err != nil {
		return a.report(err)
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if _, err := a.api.AddToCurriculum(ctx, req); err != nil {
		return a.report(err)
	}
	a.output("Task %s planned\n", req.TaskId)
	return nil
}

func (a *App) Unplan(ctx context.Context) error {
	id, err := a.ask("Task id")
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if err := a.api.RemoveFromCurriculum(ctx, id); err != nil {
		return a.report(err)
	}
	a.output("Task %s removed from the curriculum\n", id)
	return nil
}

func (a *App) ListProjects(ctx context.Context) error {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	projects, err := a.api.ListProjects(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(projects) == 0 {
		a.output("No projects\n")
		return nil
	}
	for _, p := range projects {
		a.output("%s  %s  members: %s\n", p.Id, p.Title, strings.Join(p.MemberIds, ", "))
	}
	return nil
}

func (a *App) NewProject(ctx context.Context) error {
	title, err := a.ask("Title")
	if err != nil {
		return a.report(err)
	}
	description, err := GetOptionalText(a.reader, "Description", a.out)
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	p, err := a.api.CreateProject(ctx, title, description)
	if err != nil {
		return a.report(err)
	}
	a.output("Project %s created\n", p.Id)
	return nil
}

func (a *App) Invite(ctx context.Context) error {
	projectID, err := a.ask("Project id")
	if err != nil {
		return a.report(err)
	}
	username, err := a.ask("Username to invite")
	if err != nil {
		return a.report(err)
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if _, err := a.api.Invite(ctx, projectID, username); err != nil {
		return a.report(err)
	}
	a.output("%s joined project %s\n", username, projectID)
	return nil
}
