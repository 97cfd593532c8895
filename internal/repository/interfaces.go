// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"
	"time"

	"github.com/Durga62823/work-board-sub000/internal/entities"
)

// TaskMutator changes a task loaded under a row lock. Returning an error
// aborts the write.
type TaskMutator = func(t *entities.Task) error

// SprintMutator changes a sprint loaded under a row lock.
type SprintMutator = func(s *entities.Sprint) error

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	SetUserActive(ctx context.Context, userID string, isActive bool) (*entities.User, error)
}

// TeamInterface exposes team-related operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	GetTeam(ctx context.Context, teamID string) (*entities.Team, error)
	ActiveMembers(ctx context.Context, teamID string) ([]entities.User, error)
}

// ProjectInterface exposes project-related operations.
type ProjectInterface interface {
	CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	GetProject(ctx context.Context, projectID string) (*entities.Project, error)
}

// TaskInterface exposes task persistence. Writes check that referenced
// project, sprint and assignee exist and that sprint and project share a team.
type TaskInterface interface {
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	GetTask(ctx context.Context, taskID string) (*entities.Task, error)
	UpdateTask(ctx context.Context, taskID string, mutate TaskMutator) (*entities.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	ListTasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error)
	OpenTasksByTeam(ctx context.Context, teamID string) ([]entities.Task, error)
	CompletedTasksByTeam(ctx context.Context, teamID string, since time.Time) ([]entities.Task, error)
}

// SprintInterface exposes sprint persistence.
type SprintInterface interface {
	CreateSprint(ctx context.Context, sprint entities.Sprint) (*entities.Sprint, error)
	GetSprint(ctx context.Context, sprintID string) (*entities.Sprint, error)
	UpdateSprint(ctx context.Context, sprintID string, mutate SprintMutator) (*entities.Sprint, error)
	DeleteSprint(ctx context.Context, sprintID string) error
	ListSprints(ctx context.Context, teamID string) ([]entities.Sprint, error)
	CountActiveSprints(ctx context.Context, teamID string) (int, error)
	CompletedSprints(ctx context.Context, teamID string, limit int) ([]entities.Sprint, error)
	TasksBySprints(ctx context.Context, sprintIDs []string) (map[string][]entities.Task, error)
}
