package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Durga62823/work-board-sub000/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertTeamQuery = "INSERT INTO teams(id, name) VALUES($1, $2)"
	upsertUserQuery = `
INSERT INTO users(id, username, team_id, is_active)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username, team_id = EXCLUDED.team_id, is_active = EXCLUDED.is_active
`
	selectTeamQuery          = "SELECT name FROM teams WHERE id=$1"
	selectTeamMembersQuery   = "SELECT id, username, is_active FROM users WHERE team_id=$1 ORDER BY username, id"
	selectActiveMembersQuery = "SELECT id, username FROM users WHERE team_id=$1 AND is_active=true ORDER BY username, id"
)

// CreateTeam inserts a team and upserts its members.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	err := p.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertTeamQuery, team.ID, team.Name); err != nil {
			if isUniqueViolation(err) {
				return entities.ErrTeamExists
			}
			return fmt.Errorf("insert team: %w", err)
		}

		for _, m := range team.Members {
			if _, err := tx.Exec(ctx, upsertUserQuery, m.ID, m.Username, team.ID, m.IsActive); err != nil {
				return fmt.Errorf("upsert user: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		p.log.Errorw("failed to create team", "error", err, "team", team.Name)
		return nil, err
	}

	p.log.Infow("team created", "team_id", team.ID, "team", team.Name, "members", len(team.Members))
	return p.GetTeam(ctx, team.ID)
}

// GetTeam fetches team with members by id.
func (p *Postgres) GetTeam(ctx context.Context, teamID string) (*entities.Team, error) {
	team := entities.Team{ID: teamID}
	if err := p.db.QueryRow(ctx, selectTeamQuery, teamID).Scan(&team.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	rows, err := p.db.Query(ctx, selectTeamMembersQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	defer rows.Close()

	team.Members = make([]entities.User, 0)
	for rows.Next() {
		u := entities.User{TeamID: teamID}
		if err := rows.Scan(&u.ID, &u.Username, &u.IsActive); err != nil {
			return nil, fmt.Errorf("scan members: %w", err)
		}
		team.Members = append(team.Members, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	return &team, nil
}

// ActiveMembers returns the active members of a team.
func (p *Postgres) ActiveMembers(ctx context.Context, teamID string) ([]entities.User, error) {
	if err := p.ensureTeam(ctx, p.db, teamID); err != nil {
		return nil, err
	}

	rows, err := p.db.Query(ctx, selectActiveMembersQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("active members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.User, 0)
	for rows.Next() {
		u := entities.User{TeamID: teamID, IsActive: true}
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("scan active member: %w", err)
		}
		members = append(members, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate active members: %w", err)
	}
	return members, nil
}

func (p *Postgres) ensureTeam(ctx context.Context, q querier, teamID string) error {
	var name string
	if err := q.QueryRow(ctx, selectTeamQuery, teamID).Scan(&name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrTeamNotFound
		}
		return fmt.Errorf("team lookup: %w", err)
	}
	return nil
}
