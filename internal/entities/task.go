// Package entities contains core business entities.
package entities

import "time"

// TaskStatus enumerates task states.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskInReview   TaskStatus = "IN_REVIEW"
	TaskBlocked    TaskStatus = "BLOCKED"
	TaskDone       TaskStatus = "DONE"
)

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskInReview, TaskBlocked, TaskDone:
		return true
	}
	return false
}

// Priority enumerates task priorities.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task is a unit of work tracked on the board.
type Task struct {
	ID             string
	Title          string
	Description    string
	Status         TaskStatus
	Priority       Priority
	AssigneeID     *string
	ReporterID     string
	ProjectID      *string
	SprintID       *string
	StoryPoints    *int
	EstimatedHours *float64
	ActualHours    *float64
	BlockedReason  *string
	Tags           []string
	DueDate        *time.Time
	StartedAt      *time.Time
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Points returns story points treating unset as zero.
func (t Task) Points() int {
	if t.StoryPoints == nil {
		return 0
	}
	return *t.StoryPoints
}

// Hours returns estimated hours treating unset as zero.
func (t Task) Hours() float64 {
	if t.EstimatedHours == nil {
		return 0
	}
	return *t.EstimatedHours
}

// TaskPatch is a partial task update. Nil fields are left untouched; an
// empty string on a reference field clears it.
type TaskPatch struct {
	Title          *string
	Description    *string
	Status         *TaskStatus
	Priority       *Priority
	AssigneeID     *string
	ProjectID      *string
	SprintID       *string
	StoryPoints    *int
	EstimatedHours *float64
	ActualHours    *float64
	BlockedReason  *string
	Tags           *[]string
	DueDate        *time.Time
}

// TaskFilter narrows task listings.
type TaskFilter struct {
	SprintID   *string
	ProjectID  *string
	AssigneeID *string
	Status     *TaskStatus
}

// PriorityChange is one item of a bulk priority update.
type PriorityChange struct {
	TaskID   string
	Priority Priority
}

// BulkResult reports the outcome of one bulk item.
type BulkResult struct {
	TaskID string `json:"task_id"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}
