package models

import "time"

// Curriculum is the personal schedule of a single account.
type Curriculum struct {
	ID           string
	AccountID    string
	Title        string
	Associations []*Association
	CreatedAt    time.Time
}

// Association links one task to one curriculum for its own date window,
// which may differ from the task's dates.
type Association struct {
	ID           string
	TaskID       string
	CurriculumID string
	StartDate    time.Time
	EndDate      time.Time
	Version      int64
}
