package usecase

import (
	"context"

	"github.com/Durga62823/work-board-sub000/internal/entities"
)

// TeamUsecaseInterface abstracts the organisational records the board consumes.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	Team(ctx context.Context, teamID string) (*entities.Team, error)
	SetActiveUser(ctx context.Context, userID string, isActive bool) (*entities.User, error)
	CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	Project(ctx context.Context, projectID string) (*entities.Project, error)
}

// TaskUsecaseInterface abstracts task lifecycle operations.
type TaskUsecaseInterface interface {
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	Task(ctx context.Context, taskID string) (*entities.Task, error)
	ListTasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error)
	UpdateTask(ctx context.Context, taskID string, patch entities.TaskPatch) (*entities.Task, error)
	MoveTask(ctx context.Context, taskID string, status entities.TaskStatus) (*entities.Task, error)
	AssignTask(ctx context.Context, taskID, assigneeID string) (*entities.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	BulkUpdatePriorities(ctx context.Context, changes []entities.PriorityChange) ([]entities.BulkResult, error)
}

// SprintUsecaseInterface abstracts sprint lifecycle operations.
type SprintUsecaseInterface interface {
	CreateSprint(ctx context.Context, sprint entities.Sprint) (*entities.Sprint, error)
	Sprint(ctx context.Context, sprintID string) (*entities.Sprint, error)
	ListSprints(ctx context.Context, teamID string) ([]entities.Sprint, error)
	StartSprint(ctx context.Context, sprintID string) (*entities.Sprint, error)
	CompleteSprint(ctx context.Context, sprintID string, notes *string) (*entities.Sprint, error)
	DeleteSprint(ctx context.Context, sprintID string) error
	RecordSprintVelocity(ctx context.Context, sprintID string) (*entities.Sprint, error)
	AddTaskToSprint(ctx context.Context, taskID, sprintID string) (*entities.Task, error)
	RemoveTaskFromSprint(ctx context.Context, taskID string) (*entities.Task, error)
}

// AnalyticsUsecaseInterface abstracts derived read-side queries.
type AnalyticsUsecaseInterface interface {
	TeamWorkload(ctx context.Context, teamID string) ([]entities.WorkloadSnapshot, error)
	SprintVelocity(ctx context.Context, teamID string, sprints int) (entities.VelocityHistory, error)
	SprintBurndown(ctx context.Context, sprintID string) (entities.BurndownSeries, error)
	TaskMetrics(ctx context.Context, teamID string, windowDays int) (entities.TaskMetrics, error)
}
