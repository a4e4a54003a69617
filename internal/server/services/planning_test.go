package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskplanner/internal/common"
	"github.com/dmitrijs2005/taskplanner/internal/logging"
	"github.com/dmitrijs2005/taskplanner/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type planningFixture struct {
	store      *store
	tasks      *TaskService
	curricula  *CurriculumService
	projects   *ProjectService
	alice, bob string
}

func newPlanningFixture(t *testing.T) *planningFixture {
	t.Helper()
	db := newTestDB(t)
	st := newStore()
	f := &planningFixture{
		store:     st,
		tasks:     NewTaskService(db, st, logging.Nop{}),
		curricula: NewCurriculumService(db, st, logging.Nop{}),
		projects:  NewProjectService(db, st, logging.Nop{}),
	}
	for _, name := range []string{"alice", "bobby"} {
		a := &models.Account{Username: name, Email: name + "@example.com", Enabled: true}
		require.NoError(t, accountRepo{st}.Create(context.Background(), a))
		if name == "alice" {
			f.alice = a.ID
		} else {
			f.bob = a.ID
		}
	}
	return f
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strptr(s string) *string { return &s }

func (f *planningFixture) newTask(t *testing.T, actorID string, curricula ...string) *models.Task {
	t.Helper()
	task, err := f.tasks.Create(context.Background(), actorID, NewTask{
		Title:         "Write report",
		Description:   "quarterly numbers",
		StartDate:     date(2024, 1, 1),
		EndDate:       date(2024, 1, 31),
		CurriculumIDs: curricula,
	})
	require.NoError(t, err)
	return task
}

func TestTaskCreate(t *testing.T) {
	f := newPlanningFixture(t)
	ctx := context.Background()

	c, err := f.curricula.Create(ctx, f.alice, "Semester")
	require.NoError(t, err)

	task := f.newTask(t, f.alice, c.ID, "ghost")
	assert.Equal(t, "alice", task.Creator)
	assert.Equal(t, models.TaskStatusOpen, task.Status)
	assert.Equal(t, []string{f.alice}, task.AssigneeIDs)
	assert.Equal(t, []string{c.ID}, task.CurriculumIDs())

	link := task.Associations[0]
	assert.Equal(t, task.StartDate, link.StartDate)
	assert.Equal(t, task.EndDate, link.EndDate)
}

func TestTaskCreate_Validation(t *testing.T) {
	f := newPlanningFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   NewTask
	}{
		{"short title", NewTask{Title: "abc", StartDate: date(2024, 1, 1), EndDate: date(2024, 1, 2)}},
		{"missing dates", NewTask{Title: "Write report"}},
		{"reversed dates", NewTask{Title: "Write report", StartDate: date(2024, 2, 1), EndDate: date(2024, 1, 1)}},
		{"bad status", NewTask{Title: "Write report", StartDate: date(2024, 1, 1), EndDate: date(2024, 1, 2), Status: "LATER"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.tasks.Create(ctx, f.alice, tt.in)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestTaskCreate_ForeignProject(t *testing.T) {
	f := newPlanningFixture(t)
	ctx := context.Background()

	p, err := f.projects.Create(ctx, f.bob, "Bob's", "")
	require.NoError(t, err)

	_, err = f.tasks.Create(ctx, f.alice, NewTask{
		Title: "Sneak in", StartDate: date(2024, 1, 1), EndDate: date(2024, 1, 2), ProjectID: &p.ID,
	})
	assert.ErrorIs(t, err, common.ErrorForbidden)
}

func TestTaskUpdate_ReconcilesCurricula(t *testing.T) {
	f := newPlanningFixture(t)
	ctx := context.Background()

	a, err := f.curricula.Create(ctx, f.alice, "Alice")
	require.NoError(t, err)
	b, err := f.curricula.Create(ctx, f.bob, "Bob")
	require.NoError(t, err)

	task := f.newTask(t, f.alice, a.ID, b.ID)
	assert.Len(t, task.Associations, 2)

	newEnd := date(2024, 2, 15)
	updated, err := f.tasks.Update(ctx, f.alice, task.ID, TaskUpdate{
		EndDate:       &newEnd,
		CurriculumIDs: []string{b.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{b.ID}, updated.CurriculumIDs())
	assert.Equal(t, "Write report", updated.Title)

	links, _ := linkRepo{f.store}.FindAllByTask(ctx, task.ID)
	require.Len(t, links, 1)
	assert.Equal(t, newEnd, links[0].EndDate)

	cleared, err := f.tasks.Update(ctx, f.alice, task.ID, TaskUpdate{})
	require.NoError(t, err)
	assert.Empty(t, cleared.Associations)
	links, _ = linkRepo{f.store}.FindAllByTask(ctx, task.ID)
	assert.Empty(t, links)
}

func TestTaskUpdate_StaleVersion(t *testing.T) {
	f := newPlanningFixture(t)
	task := f.newTask(t, f.alice)

	stale := task.Version - 1
	_, err := f.tasks.Update(context.Background(), f.alice, task.ID, TaskUpdate{Version: &stale})
	assert.ErrorIs(t, err, common.ErrVersionConflict)
}

func TestTaskUpdate_ProjectClearedWhenOmitted(t *testing.T) {
	f := newPlanningFixture(t)
	ctx := context.Background()

	p, err := f.projects.Create(ctx, f.alice, "Launch", "")
	require.NoError(t, err)
	task := f.newTask(t, f.alice)

	moved, err := f.tasks.AssignToProject(ctx, f.alice, task.ID, p.ID)
	require.NoError(t, err)
	require.NotNil(t, moved.ProjectID)

	updated, err := f.tasks.Update(ctx, f.alice, task.ID, TaskUpdate{Title: strptr("Write final report")})
	require.NoError(t, err)
	assert.Nil(t, updated.ProjectID)
}

func TestTaskAccess(t *testing.T) {
	f := newPlanningFixture(t)
	ctx := context.Background()
	task := f.newTask(t, f.alice)

	_, err := f.tasks.Get(ctx, f.bob, task.ID)
	assert.ErrorIs(t, err, common.ErrorForbidden)
	assert.ErrorIs(t, f.tasks.Delete(ctx, f.bob, task.ID), common.ErrorForbidden)

	p, err := f.projects.Create(ctx, f.alice, "Launch", "")
	require.NoError(t, err)
	_, err = f.tasks.AssignToProject(ctx, f.alice, task.ID, p.ID)
	require.NoError(t, err)
	_, err = f.projects.Invite(ctx, f.alice, p.ID, "bobby")
	require.NoError(t, err)

	got, err := f.tasks.Get(ctx, f.bob, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)

	list, err := f.tasks.List(ctx, f.bob)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.tasks.Get(ctx, f.alice, "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestTaskUpdateStatusAndDelete(t *testing.T) {
	f := newPlanningFixture(t)
	ctx := context.Background()
	task := f.newTask(t, f.alice)

	done, err := f.tasks.UpdateStatus(ctx, f.alice, task.ID, "done")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusDone, done.Status)

	_, err = f.tasks.UpdateStatus(ctx, f.alice, task.ID, "someday")
	assert.ErrorIs(t, err, common.ErrorValidation)

	require.NoError(t, f.tasks.Delete(ctx, f.alice, task.ID))
	_, err = f.tasks.Get(ctx, f.alice, task.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCurriculum_OnePerAccount(t *testing.T) {
	f := newPlanningFixture(t)
	ctx := context.Background()

	_, err := f.curricula.Create(ctx, f.alice, "Mine")
	require.NoError(t, err)
	_, err = f.curricula.Create(ctx, f.alice, "Another")
	assert.ErrorIs(t, err, common.ErrAlreadyExists)

	c, err := f.curricula.Update(ctx, f.alice, "Renamed")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", c.Title)

	require.NoError(t, f.curricula.Delete(ctx, f.alice))
	_, err = f.curricula.Current(ctx, f.alice)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCurriculum_TaskLinks(t *testing.T) {
	f := newPlanningFixture(t)
	ctx := context.Background()

	_, err := f.curricula.Create(ctx, f.alice, "Mine")
	require.NoError(t, err)
	task := f.newTask(t, f.alice)

	link, err := f.curricula.AddTask(ctx, f.alice, task.ID, date(2024, 1, 1), date(2024, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, date(2024, 2, 1), link.EndDate)

	_, err = f.curricula.AddTask(ctx, f.alice, task.ID, date(2024, 1, 1), date(2024, 2, 1))
	assert.ErrorIs(t, err, common.ErrAlreadyExists)

	moved, err := f.curricula.UpdateTaskDates(ctx, f.alice, task.ID, date(2024, 3, 1), date(2024, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 1), moved.StartDate)

	c, err := f.curricula.Current(ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, c.Associations, 1)

	require.NoError(t, f.curricula.RemoveTask(ctx, f.alice, task.ID))
	assert.ErrorIs(t, f.curricula.RemoveTask(ctx, f.alice, task.ID), common.ErrorNotFound)
}

func TestCurriculum_ForeignTask(t *testing.T) {
	f := newPlanningFixture(t)
	ctx := context.Background()

	_, err := f.curricula.Create(ctx, f.bob, "Bob")
	require.NoError(t, err)
	task := f.newTask(t, f.alice)

	_, err = f.curricula.AddTask(ctx, f.bob, task.ID, date(2024, 1, 1), date(2024, 1, 2))
	assert.ErrorIs(t, err, common.ErrorForbidden)
}

func TestProjects(t *testing.T) {
	f := newPlanningFixture(t)
	ctx := context.Background()

	p, err := f.projects.Create(ctx, f.alice, "Launch", "go live")
	require.NoError(t, err)
	assert.Equal(t, []string{f.alice}, p.MemberIDs)

	_, err = f.projects.Get(ctx, f.bob, p.ID)
	assert.ErrorIs(t, err, common.ErrorForbidden)

	_, err = f.projects.Invite(ctx, f.alice, p.ID, "nobody")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	p, err = f.projects.Invite(ctx, f.alice, p.ID, "bobby")
	require.NoError(t, err)
	assert.True(t, p.HasMember(f.bob))

	updated, err := f.projects.Update(ctx, f.bob, p.ID, "Launch v2", "")
	require.NoError(t, err)
	assert.Equal(t, "Launch v2", updated.Title)

	list, err := f.projects.List(ctx, f.bob)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.ErrorIs(t, f.projects.Delete(ctx, f.bob, p.ID), common.ErrorForbidden)
	require.NoError(t, f.projects.Delete(ctx, f.alice, p.ID))
	_, err = f.projects.Get(ctx, f.alice, p.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestProjects_DeleteRemovesTasks(t *testing.T) {
	f := newPlanningFixture(t)
	ctx := context.Background()

	p, err := f.projects.Create(ctx, f.alice, "Launch", "")
	require.NoError(t, err)
	task, err := f.tasks.Create(ctx, f.alice, NewTask{
		Title: "Ship it", StartDate: date(2024, 1, 1), EndDate: date(2024, 1, 2), ProjectID: &p.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.projects.Delete(ctx, f.alice, p.ID))
	_, err = f.tasks.Get(ctx, f.alice, task.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
