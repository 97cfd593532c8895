// Package dto holds the JSON request and response models of the HTTP API.
package dto

import "time"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the error kind and a human readable message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TeamMember is a member inside a team payload.
type TeamMember struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	IsActive bool   `json:"is_active"`
}

// Team is a team with its members.
type Team struct {
	TeamID   string       `json:"team_id,omitempty"`
	TeamName string       `json:"team_name"`
	Members  []TeamMember `json:"members"`
}

// User is a single user record.
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	TeamID   string `json:"team_id"`
	IsActive bool   `json:"is_active"`
}

// SetUserActiveRequest toggles user activity.
type SetUserActiveRequest struct {
	UserID   string `json:"user_id"`
	IsActive bool   `json:"is_active"`
}

// Project is a project owned by a team.
type Project struct {
	ProjectID string `json:"project_id,omitempty"`
	Name      string `json:"name"`
	TeamID    string `json:"team_id"`
}

// Task is the task representation returned by the API.
type Task struct {
	TaskID         string     `json:"task_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	AssigneeID     *string    `json:"assignee_id"`
	ReporterID     string     `json:"reporter_id"`
	ProjectID      *string    `json:"project_id"`
	SprintID       *string    `json:"sprint_id"`
	StoryPoints    *int       `json:"story_points"`
	EstimatedHours *float64   `json:"estimated_hours"`
	ActualHours    *float64   `json:"actual_hours"`
	BlockedReason  *string    `json:"blocked_reason,omitempty"`
	Tags           []string   `json:"tags"`
	DueDate        *time.Time `json:"due_date"`
	StartedAt      *time.Time `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CreateTaskRequest is the body of POST /tasks. The reporter is the actor.
type CreateTaskRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	AssigneeID     *string    `json:"assignee_id"`
	ProjectID      *string    `json:"project_id"`
	SprintID       *string    `json:"sprint_id"`
	StoryPoints    *int       `json:"story_points"`
	EstimatedHours *float64   `json:"estimated_hours"`
	BlockedReason  *string    `json:"blocked_reason"`
	Tags           []string   `json:"tags"`
	DueDate        *time.Time `json:"due_date"`
}

// UpdateTaskRequest is a partial update. Absent fields stay unchanged; an
// empty string clears a reference.
type UpdateTaskRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Status         *string    `json:"status"`
	Priority       *string    `json:"priority"`
	AssigneeID     *string    `json:"assignee_id"`
	ProjectID      *string    `json:"project_id"`
	SprintID       *string    `json:"sprint_id"`
	StoryPoints    *int       `json:"story_points"`
	EstimatedHours *float64   `json:"estimated_hours"`
	ActualHours    *float64   `json:"actual_hours"`
	BlockedReason  *string    `json:"blocked_reason"`
	Tags           *[]string  `json:"tags"`
	DueDate        *time.Time `json:"due_date"`
}

// MoveTaskRequest changes the task status. BlockedReason is required when
// moving to BLOCKED.
type MoveTaskRequest struct {
	Status        string  `json:"status"`
	BlockedReason *string `json:"blocked_reason"`
}

// AssignTaskRequest changes the assignee; empty unassigns.
type AssignTaskRequest struct {
	AssigneeID string `json:"assignee_id"`
}

// PriorityChange is one item of a bulk priority update.
type PriorityChange struct {
	TaskID   string `json:"task_id"`
	Priority string `json:"priority"`
}

// BulkPrioritiesRequest is the body of POST /tasks/priorities.
type BulkPrioritiesRequest struct {
	Updates []PriorityChange `json:"updates"`
}

// BulkResult reports the outcome of one bulk item.
type BulkResult struct {
	TaskID string `json:"task_id"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

// BulkPrioritiesResponse lists per-item outcomes in request order.
type BulkPrioritiesResponse struct {
	Results []BulkResult `json:"results"`
}

// Sprint is the sprint representation returned by the API.
type Sprint struct {
	SprintID           string    `json:"sprint_id"`
	Name               string    `json:"name"`
	Goal               string    `json:"goal"`
	TeamID             string    `json:"team_id"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	Status             string    `json:"status"`
	CapacityHours      *float64  `json:"capacity_hours"`
	Velocity           *int      `json:"velocity"`
	RetrospectiveNotes *string   `json:"retrospective_notes"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CreateSprintRequest is the body of POST /sprints.
type CreateSprintRequest struct {
	Name          string    `json:"name"`
	Goal          string    `json:"goal"`
	TeamID        string    `json:"team_id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	CapacityHours *float64  `json:"capacity_hours"`
}

// CompleteSprintRequest carries optional retrospective notes.
type CompleteSprintRequest struct {
	RetrospectiveNotes *string `json:"retrospective_notes"`
}

// SprintTaskRequest links a task to a sprint.
type SprintTaskRequest struct {
	TaskID string `json:"task_id"`
}
