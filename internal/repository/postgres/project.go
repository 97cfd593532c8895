package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Durga62823/work-board-sub000/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertProjectQuery = "INSERT INTO projects(id, name, team_id) VALUES ($1, $2, $3)"
	selectProjectQuery = "SELECT id, name, team_id FROM projects WHERE id=$1"
)

// CreateProject inserts a project owned by an existing team.
func (p *Postgres) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	err := p.inTx(ctx, func(tx pgx.Tx) error {
		if err := p.ensureTeam(ctx, tx, project.TeamID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, insertProjectQuery, project.ID, project.Name, project.TeamID); err != nil {
			return fmt.Errorf("insert project: %w", err)
		}
		return nil
	})
	if err != nil {
		p.log.Errorw("failed to create project", "error", err, "team_id", project.TeamID)
		return nil, err
	}

	p.log.Infow("project created", "project_id", project.ID, "team_id", project.TeamID)
	return &project, nil
}

// GetProject fetches a project by id.
func (p *Postgres) GetProject(ctx context.Context, projectID string) (*entities.Project, error) {
	var pr entities.Project
	if err := p.db.QueryRow(ctx, selectProjectQuery, projectID).Scan(&pr.ID, &pr.Name, &pr.TeamID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &pr, nil
}
