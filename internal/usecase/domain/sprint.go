package domain

import (
	"context"
	"fmt"

	"github.com/Durga62823/work-board-sub000/internal/analytics"
	"github.com/Durga62823/work-board-sub000/internal/entities"
	"github.com/Durga62823/work-board-sub000/internal/lifecycle"
)

// CreateSprint validates and stores a PLANNING sprint.
func (u *Usecase) CreateSprint(ctx context.Context, sprint entities.Sprint) (*entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	created, err := lifecycle.NewSprint(sprint, u.clock())
	if err != nil {
		return nil, err
	}
	created.ID = u.newID()
	return u.repo.CreateSprint(ctx, created)
}

// Sprint returns a sprint by id.
func (u *Usecase) Sprint(ctx context.Context, sprintID string) (*entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sprintID == "" {
		return nil, fmt.Errorf("%w: sprint_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetSprint(ctx, sprintID)
}

// ListSprints returns the sprints of a team.
func (u *Usecase) ListSprints(ctx context.Context, teamID string) ([]entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListSprints(ctx, teamID)
}

// StartSprint moves a sprint to ACTIVE. A team may hold more than one
// active sprint; that case is only logged.
func (u *Usecase) StartSprint(ctx context.Context, sprintID string) (*entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sprintID == "" {
		return nil, fmt.Errorf("%w: sprint_id is required", entities.ErrInvalidArgument)
	}
	s, err := u.repo.UpdateSprint(ctx, sprintID, func(s *entities.Sprint) error {
		return lifecycle.Start(s, u.clock())
	})
	if err != nil {
		return nil, err
	}

	active, err := u.repo.CountActiveSprints(ctx, s.TeamID)
	if err != nil {
		u.log.Warnw("count active sprints", "team_id", s.TeamID, "error", err)
	} else if active > 1 {
		u.log.Warnw("team has several active sprints", "team_id", s.TeamID, "active", active)
	}
	u.log.Infow("sprint start", "sprint_id", s.ID, "team_id", s.TeamID)
	return s, nil
}

// CompleteSprint moves a sprint to COMPLETED and stores retrospective notes
// when given. Velocity is recorded separately.
func (u *Usecase) CompleteSprint(ctx context.Context, sprintID string, notes *string) (*entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sprintID == "" {
		return nil, fmt.Errorf("%w: sprint_id is required", entities.ErrInvalidArgument)
	}
	s, err := u.repo.UpdateSprint(ctx, sprintID, func(s *entities.Sprint) error {
		lifecycle.Complete(s, notes, u.clock())
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("sprint complete", "sprint_id", s.ID, "team_id", s.TeamID)
	return s, nil
}

// DeleteSprint removes a sprint; its tasks stay with no sprint.
func (u *Usecase) DeleteSprint(ctx context.Context, sprintID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sprintID == "" {
		return fmt.Errorf("%w: sprint_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteSprint(ctx, sprintID)
}

// RecordSprintVelocity stores the completed story points of a COMPLETED sprint.
func (u *Usecase) RecordSprintVelocity(ctx context.Context, sprintID string) (*entities.Sprint, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sprintID == "" {
		return nil, fmt.Errorf("%w: sprint_id is required", entities.ErrInvalidArgument)
	}
	tasks, err := u.repo.ListTasks(ctx, entities.TaskFilter{SprintID: &sprintID})
	if err != nil {
		return nil, err
	}
	points := analytics.CompletedPoints(tasks)

	s, err := u.repo.UpdateSprint(ctx, sprintID, func(s *entities.Sprint) error {
		return lifecycle.RecordVelocity(s, points, u.clock())
	})
	if err != nil {
		return nil, err
	}
	u.log.Infow("sprint velocity", "sprint_id", s.ID, "points", points)
	return s, nil
}

// AddTaskToSprint links a task to a sprint of the same team.
func (u *Usecase) AddTaskToSprint(ctx context.Context, taskID, sprintID string) (*entities.Task, error) {
	if sprintID == "" {
		return nil, fmt.Errorf("%w: sprint_id is required", entities.ErrInvalidArgument)
	}
	return u.UpdateTask(ctx, taskID, entities.TaskPatch{SprintID: &sprintID})
}

// RemoveTaskFromSprint clears the sprint of a task.
func (u *Usecase) RemoveTaskFromSprint(ctx context.Context, taskID string) (*entities.Task, error) {
	none := ""
	return u.UpdateTask(ctx, taskID, entities.TaskPatch{SprintID: &none})
}
