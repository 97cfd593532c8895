package domain

import (
	"context"
	"fmt"

	"github.com/Durga62823/work-board-sub000/internal/entities"
	"github.com/Durga62823/work-board-sub000/internal/lifecycle"

	"golang.org/x/sync/errgroup"
)

// CreateTask validates and stores a new task reported by task.ReporterID.
func (u *Usecase) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if task.ReporterID == "" {
		return nil, fmt.Errorf("%w: reporter is required", entities.ErrInvalidArgument)
	}
	created, err := lifecycle.NewTask(task, u.clock())
	if err != nil {
		return nil, err
	}
	created.ID = u.newID()

	res, err := u.repo.CreateTask(ctx, created)
	if err != nil {
		return nil, err
	}
	u.log.Infow("task create", "task_id", res.ID, "reporter", res.ReporterID)
	return res, nil
}

// Task returns a task by id.
func (u *Usecase) Task(ctx context.Context, taskID string) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" {
		return nil, fmt.Errorf("%w: task_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTask(ctx, taskID)
}

// ListTasks returns tasks matching filter.
func (u *Usecase) ListTasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, *filter.Status)
	}
	return u.repo.ListTasks(ctx, filter)
}

// UpdateTask applies a partial update with the status side effects. The
// write is last-writer-wins per field; concurrent patches of one task are
// serialized by the store.
func (u *Usecase) UpdateTask(ctx context.Context, taskID string, patch entities.TaskPatch) (*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" {
		return nil, fmt.Errorf("%w: task_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.UpdateTask(ctx, taskID, func(t *entities.Task) error {
		return lifecycle.ApplyPatch(t, patch, u.clock())
	})
}

// MoveTask changes only the status of a task.
func (u *Usecase) MoveTask(ctx context.Context, taskID string, status entities.TaskStatus) (*entities.Task, error) {
	return u.UpdateTask(ctx, taskID, entities.TaskPatch{Status: &status})
}

// AssignTask changes only the assignee of a task. An empty id unassigns it.
func (u *Usecase) AssignTask(ctx context.Context, taskID, assigneeID string) (*entities.Task, error) {
	return u.UpdateTask(ctx, taskID, entities.TaskPatch{AssigneeID: &assigneeID})
}

// DeleteTask removes a task.
func (u *Usecase) DeleteTask(ctx context.Context, taskID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if taskID == "" {
		return fmt.Errorf("%w: task_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteTask(ctx, taskID)
}

// BulkUpdatePriorities updates each task independently and in parallel.
// A failed item does not roll back the others; every item gets a result.
// The returned error is set only when the batch could not be dispatched.
func (u *Usecase) BulkUpdatePriorities(ctx context.Context, changes []entities.PriorityChange) ([]entities.BulkResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("dispatch bulk priorities: %w", err)
	}

	results := make([]entities.BulkResult, len(changes))
	var g errgroup.Group
	g.SetLimit(u.engine.BulkParallelism)
	for i, ch := range changes {
		g.Go(func() error {
			res := entities.BulkResult{TaskID: ch.TaskID, OK: true}
			priority := ch.Priority
			if _, err := u.UpdateTask(ctx, ch.TaskID, entities.TaskPatch{Priority: &priority}); err != nil {
				res.OK = false
				res.Error = err.Error()
				u.log.Warnw("bulk priority item failed", "task_id", ch.TaskID, "error", err)
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if !r.OK {
			failed++
		}
	}
	u.log.Infow("bulk priorities", "items", len(changes), "failed", failed)
	return results, nil
}
