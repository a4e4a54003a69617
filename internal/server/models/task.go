package models

import (
	"fmt"
	"strings"
	"time"
)

type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "OPEN"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// ParseTaskStatus accepts a status name in any case. An empty string
// defaults to OPEN.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case "", TaskStatusOpen:
		return TaskStatusOpen, nil
	case TaskStatusInProgress:
		return TaskStatusInProgress, nil
	case TaskStatusDone:
		return TaskStatusDone, nil
	default:
		return "", fmt.Errorf("unknown task status %q", s)
	}
}

// Task is a unit of planned work. Creator holds the creating account's
// username at creation time.
type Task struct {
	ID          string
	Title       string
	Description string
	Creator     string
	StartDate   time.Time
	EndDate     time.Time
	Status      TaskStatus
	ProjectID   *string
	AssigneeIDs []string

	// Associations is populated by services that load curriculum links.
	Associations []*Association

	Version   int64
	CreatedAt time.Time
}

// CurriculumIDs lists the curricula the task is linked to.
func (t *Task) CurriculumIDs() []string {
	ids := make([]string, 0, len(t.Associations))
	for _, a := range t.Associations {
		ids = append(ids, a.CurriculumID)
	}
	return ids
}

func (t *Task) IsAssignee(accountID string) bool {
	for _, id := range t.AssigneeIDs {
		if id == accountID {
			return true
		}
	}
	return false
}
