package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Durga62823/work-board-sub000/internal/entities"

	"github.com/jackc/pgx/v5"
)

const sprintColumns = `id, name, goal, team_id, start_date, end_date, status, capacity_hours, velocity,
retrospective_notes, created_at, updated_at`

const (
	insertSprintQuery = `
INSERT INTO sprints(id, name, goal, team_id, start_date, end_date, status, capacity_hours, velocity,
    retrospective_notes, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`
	updateSprintQuery = `
UPDATE sprints SET name=$2, goal=$3, start_date=$4, end_date=$5, status=$6, capacity_hours=$7, velocity=$8,
    retrospective_notes=$9, updated_at=$10
WHERE id=$1`
	selectSprintQuery          = `SELECT ` + sprintColumns + ` FROM sprints WHERE id=$1`
	selectSprintForUpdateQuery = selectSprintQuery + ` FOR UPDATE`
	deleteSprintQuery          = `DELETE FROM sprints WHERE id=$1`
	listSprintsQuery           = `SELECT ` + sprintColumns + ` FROM sprints WHERE team_id=$1 ORDER BY start_date DESC, id`
	countActiveSprintsQuery    = `SELECT COUNT(*) FROM sprints WHERE team_id=$1 AND status='ACTIVE'`
	completedSprintsQuery      = `
SELECT ` + sprintColumns + `
FROM sprints
WHERE team_id=$1 AND status='COMPLETED'
ORDER BY end_date DESC, id
LIMIT $2`
	tasksBySprintsQuery = `SELECT ` + taskColumns + ` FROM tasks t WHERE t.sprint_id = ANY($1::text[]) ORDER BY t.created_at, t.id`
)

// CreateSprint inserts a sprint for an existing team.
func (p *Postgres) CreateSprint(ctx context.Context, sprint entities.Sprint) (*entities.Sprint, error) {
	err := p.inTx(ctx, func(tx pgx.Tx) error {
		if err := p.ensureTeam(ctx, tx, sprint.TeamID); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, insertSprintQuery,
			sprint.ID, sprint.Name, sprint.Goal, sprint.TeamID, sprint.StartDate, sprint.EndDate, sprint.Status,
			sprint.CapacityHours, sprint.Velocity, sprint.RetrospectiveNotes, sprint.CreatedAt, sprint.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert sprint: %w", err)
		}
		return nil
	})
	if err != nil {
		p.log.Errorw("failed to create sprint", "error", err, "team_id", sprint.TeamID)
		return nil, err
	}

	p.log.Infow("sprint created", "sprint_id", sprint.ID, "team_id", sprint.TeamID)
	return &sprint, nil
}

// GetSprint fetches a sprint by id.
func (p *Postgres) GetSprint(ctx context.Context, sprintID string) (*entities.Sprint, error) {
	s, err := scanSprint(p.db.QueryRow(ctx, selectSprintQuery, sprintID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrSprintNotFound
		}
		return nil, fmt.Errorf("get sprint: %w", err)
	}
	return &s, nil
}

// UpdateSprint locks the sprint row, applies mutate and writes it back.
func (p *Postgres) UpdateSprint(ctx context.Context, sprintID string, mutate func(s *entities.Sprint) error) (*entities.Sprint, error) {
	var s entities.Sprint
	err := p.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		s, err = scanSprint(tx.QueryRow(ctx, selectSprintForUpdateQuery, sprintID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return entities.ErrSprintNotFound
			}
			return fmt.Errorf("get sprint: %w", err)
		}

		if err := mutate(&s); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, updateSprintQuery,
			s.ID, s.Name, s.Goal, s.StartDate, s.EndDate, s.Status, s.CapacityHours, s.Velocity,
			s.RetrospectiveNotes, s.UpdatedAt)
		if err != nil {
			return fmt.Errorf("update sprint: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, entities.ErrNotFound) && !errors.Is(err, entities.ErrConflict) {
			p.log.Errorw("failed to update sprint", "error", err, "sprint_id", sprintID)
		}
		return nil, err
	}

	p.log.Infow("sprint updated", "sprint_id", sprintID, "status", s.Status)
	return &s, nil
}

// DeleteSprint removes a sprint. Linked tasks keep existing with sprint_id
// cleared by the foreign key.
func (p *Postgres) DeleteSprint(ctx context.Context, sprintID string) error {
	tag, err := p.db.Exec(ctx, deleteSprintQuery, sprintID)
	if err != nil {
		p.log.Errorw("failed to delete sprint", "error", err, "sprint_id", sprintID)
		return fmt.Errorf("delete sprint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrSprintNotFound
	}
	p.log.Infow("sprint deleted", "sprint_id", sprintID)
	return nil
}

// ListSprints returns team sprints, latest start first.
func (p *Postgres) ListSprints(ctx context.Context, teamID string) ([]entities.Sprint, error) {
	if err := p.ensureTeam(ctx, p.db, teamID); err != nil {
		return nil, err
	}
	return p.querySprints(ctx, "list sprints", listSprintsQuery, teamID)
}

// CountActiveSprints returns how many sprints of the team are ACTIVE.
func (p *Postgres) CountActiveSprints(ctx context.Context, teamID string) (int, error) {
	var n int
	if err := p.db.QueryRow(ctx, countActiveSprintsQuery, teamID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count active sprints: %w", err)
	}
	return n, nil
}

// CompletedSprints returns up to limit COMPLETED sprints, most recently ended first.
func (p *Postgres) CompletedSprints(ctx context.Context, teamID string, limit int) ([]entities.Sprint, error) {
	if err := p.ensureTeam(ctx, p.db, teamID); err != nil {
		return nil, err
	}
	return p.querySprints(ctx, "completed sprints", completedSprintsQuery, teamID, limit)
}

// TasksBySprints returns tasks grouped by sprint id.
func (p *Postgres) TasksBySprints(ctx context.Context, sprintIDs []string) (map[string][]entities.Task, error) {
	res := make(map[string][]entities.Task, len(sprintIDs))
	if len(sprintIDs) == 0 {
		return res, nil
	}

	tasks, err := p.queryTasks(ctx, p.db, "sprint tasks", tasksBySprintsQuery, sprintIDs)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		res[*t.SprintID] = append(res[*t.SprintID], t)
	}
	return res, nil
}

func (p *Postgres) querySprints(ctx context.Context, op, query string, args ...any) ([]entities.Sprint, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		p.log.Errorw("failed to query sprints", "error", err, "op", op)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	sprints := make([]entities.Sprint, 0)
	for rows.Next() {
		s, err := scanSprint(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", op, err)
		}
		sprints = append(sprints, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", op, err)
	}
	return sprints, nil
}

func scanSprint(row pgx.Row) (entities.Sprint, error) {
	var s entities.Sprint
	err := row.Scan(
		&s.ID, &s.Name, &s.Goal, &s.TeamID, &s.StartDate, &s.EndDate, &s.Status, &s.CapacityHours,
		&s.Velocity, &s.RetrospectiveNotes, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}
