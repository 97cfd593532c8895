package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Durga62823/work-board-sub000/internal/entities"

	"github.com/jackc/pgx/v5"
)

const taskColumns = `t.id, t.title, t.description, t.status, t.priority, t.assignee_id, t.reporter_id,
t.project_id, t.sprint_id, t.story_points, t.estimated_hours, t.actual_hours, t.blocked_reason,
t.tags, t.due_date, t.started_at, t.completed_at, t.created_at, t.updated_at`

const (
	insertTaskQuery = `
INSERT INTO tasks(id, title, description, status, priority, assignee_id, reporter_id, project_id, sprint_id,
    story_points, estimated_hours, actual_hours, blocked_reason, tags, due_date, started_at, completed_at,
    created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`
	updateTaskQuery = `
UPDATE tasks SET title=$2, description=$3, status=$4, priority=$5, assignee_id=$6, project_id=$7, sprint_id=$8,
    story_points=$9, estimated_hours=$10, actual_hours=$11, blocked_reason=$12, tags=$13, due_date=$14,
    started_at=$15, completed_at=$16, updated_at=$17
WHERE id=$1`
	selectTaskQuery          = `SELECT ` + taskColumns + ` FROM tasks t WHERE t.id=$1`
	selectTaskForUpdateQuery = selectTaskQuery + ` FOR UPDATE`
	deleteTaskQuery          = `DELETE FROM tasks WHERE id=$1`
	openTasksByTeamQuery     = `
SELECT ` + taskColumns + `
FROM tasks t
JOIN projects p ON p.id = t.project_id
WHERE p.team_id=$1 AND t.status <> 'DONE'
ORDER BY t.created_at, t.id`
	completedTasksByTeamQuery = `
SELECT ` + taskColumns + `
FROM tasks t
JOIN projects p ON p.id = t.project_id
WHERE p.team_id=$1 AND t.status = 'DONE' AND t.completed_at >= $2
ORDER BY t.completed_at, t.id`
	selectProjectTeamQuery = `SELECT team_id FROM projects WHERE id=$1`
	selectSprintTeamQuery  = `SELECT team_id FROM sprints WHERE id=$1`
	selectUserExistsQuery  = `SELECT true FROM users WHERE id=$1`
)

// CreateTask inserts a task after checking its references.
func (p *Postgres) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	err := p.inTx(ctx, func(tx pgx.Tx) error {
		if err := p.checkTaskRefs(ctx, tx, task); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, insertTaskQuery,
			task.ID, task.Title, task.Description, task.Status, task.Priority, task.AssigneeID, task.ReporterID,
			task.ProjectID, task.SprintID, task.StoryPoints, task.EstimatedHours, task.ActualHours,
			task.BlockedReason, task.Tags, task.DueDate, task.StartedAt, task.CompletedAt,
			task.CreatedAt, task.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}
		return nil
	})
	if err != nil {
		p.log.Errorw("failed to create task", "error", err, "task_id", task.ID)
		return nil, err
	}

	p.log.Infow("task created", "task_id", task.ID, "status", task.Status)
	return &task, nil
}

// GetTask fetches a task by id.
func (p *Postgres) GetTask(ctx context.Context, taskID string) (*entities.Task, error) {
	task, err := scanTask(p.db.QueryRow(ctx, selectTaskQuery, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &task, nil
}

// UpdateTask locks the task row, applies mutate and writes the result back.
// Concurrent updates of one task serialize on the row lock.
func (p *Postgres) UpdateTask(ctx context.Context, taskID string, mutate func(t *entities.Task) error) (*entities.Task, error) {
	var task entities.Task
	err := p.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		task, err = scanTask(tx.QueryRow(ctx, selectTaskForUpdateQuery, taskID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return entities.ErrTaskNotFound
			}
			return fmt.Errorf("get task: %w", err)
		}

		if err := mutate(&task); err != nil {
			return err
		}
		if err := p.checkTaskRefs(ctx, tx, task); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, updateTaskQuery,
			task.ID, task.Title, task.Description, task.Status, task.Priority, task.AssigneeID,
			task.ProjectID, task.SprintID, task.StoryPoints, task.EstimatedHours, task.ActualHours,
			task.BlockedReason, task.Tags, task.DueDate, task.StartedAt, task.CompletedAt, task.UpdatedAt)
		if err != nil {
			return fmt.Errorf("update task: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, entities.ErrInvalidArgument) && !errors.Is(err, entities.ErrNotFound) {
			p.log.Errorw("failed to update task", "error", err, "task_id", taskID)
		}
		return nil, err
	}

	p.log.Infow("task updated", "task_id", taskID, "status", task.Status)
	return &task, nil
}

// DeleteTask removes a task unconditionally.
func (p *Postgres) DeleteTask(ctx context.Context, taskID string) error {
	tag, err := p.db.Exec(ctx, deleteTaskQuery, taskID)
	if err != nil {
		p.log.Errorw("failed to delete task", "error", err, "task_id", taskID)
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTaskNotFound
	}
	p.log.Infow("task deleted", "task_id", taskID)
	return nil
}

// ListTasks returns tasks matching filter, oldest first.
func (p *Postgres) ListTasks(ctx context.Context, filter entities.TaskFilter) ([]entities.Task, error) {
	whereClause, args := buildTaskFilter(filter)

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(taskColumns)
	b.WriteString(" FROM tasks t")
	if whereClause != "" {
		b.WriteByte(' ')
		b.WriteString(whereClause)
	}
	b.WriteString(" ORDER BY t.created_at, t.id")

	return p.queryTasks(ctx, p.db, "list tasks", b.String(), args...)
}

// OpenTasksByTeam returns not-DONE tasks of projects owned by the team.
func (p *Postgres) OpenTasksByTeam(ctx context.Context, teamID string) ([]entities.Task, error) {
	return p.queryTasks(ctx, p.db, "open tasks", openTasksByTeamQuery, teamID)
}

// CompletedTasksByTeam returns DONE tasks of the team completed at or after since.
func (p *Postgres) CompletedTasksByTeam(ctx context.Context, teamID string, since time.Time) ([]entities.Task, error) {
	if err := p.ensureTeam(ctx, p.db, teamID); err != nil {
		return nil, err
	}
	return p.queryTasks(ctx, p.db, "completed tasks", completedTasksByTeamQuery, teamID, since)
}

// checkTaskRefs verifies referenced rows exist and that the sprint and the
// project belong to the same team.
func (p *Postgres) checkTaskRefs(ctx context.Context, q querier, task entities.Task) error {
	var projectTeam, sprintTeam string
	if task.ProjectID != nil {
		if err := q.QueryRow(ctx, selectProjectTeamQuery, *task.ProjectID).Scan(&projectTeam); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return entities.ErrProjectNotFound
			}
			return fmt.Errorf("project lookup: %w", err)
		}
	}
	if task.SprintID != nil {
		if err := q.QueryRow(ctx, selectSprintTeamQuery, *task.SprintID).Scan(&sprintTeam); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return entities.ErrSprintNotFound
			}
			return fmt.Errorf("sprint lookup: %w", err)
		}
	}
	if projectTeam != "" && sprintTeam != "" && projectTeam != sprintTeam {
		return fmt.Errorf("%w: sprint belongs to another team than the task's project", entities.ErrInvalidArgument)
	}
	if task.AssigneeID != nil {
		var exists bool
		if err := q.QueryRow(ctx, selectUserExistsQuery, *task.AssigneeID).Scan(&exists); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return entities.ErrUserNotFound
			}
			return fmt.Errorf("assignee lookup: %w", err)
		}
	}
	return nil
}

func (p *Postgres) queryTasks(ctx context.Context, q querier, op, query string, args ...any) ([]entities.Task, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		p.log.Errorw("failed to query tasks", "error", err, "op", op)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", op, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", op, err)
	}
	return tasks, nil
}

func scanTask(row pgx.Row) (entities.Task, error) {
	var t entities.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.AssigneeID, &t.ReporterID,
		&t.ProjectID, &t.SprintID, &t.StoryPoints, &t.EstimatedHours, &t.ActualHours, &t.BlockedReason,
		&t.Tags, &t.DueDate, &t.StartedAt, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return t, err
}

func buildTaskFilter(filter entities.TaskFilter) (string, []any) {
	conditions := make([]string, 0)
	args := make([]any, 0)
	idx := 1
	add := func(column string, value any) {
		conditions = append(conditions, column+" = $"+strconv.Itoa(idx))
		args = append(args, value)
		idx++
	}
	if filter.SprintID != nil {
		add("t.sprint_id", *filter.SprintID)
	}
	if filter.ProjectID != nil {
		add("t.project_id", *filter.ProjectID)
	}
	if filter.AssigneeID != nil {
		add("t.assignee_id", *filter.AssigneeID)
	}
	if filter.Status != nil {
		add("t.status", string(*filter.Status))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
