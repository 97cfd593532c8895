package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Durga62823/work-board-sub000/internal/entities"
)

// CreateTeam creates a team and upserts its members.
func (u *Usecase) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	team.Name = strings.TrimSpace(team.Name)
	if team.Name == "" {
		return nil, fmt.Errorf("%w: team_name is required", entities.ErrInvalidArgument)
	}
	for _, m := range team.Members {
		if strings.TrimSpace(m.ID) == "" {
			return nil, fmt.Errorf("%w: member user_id is required", entities.ErrInvalidArgument)
		}
	}
	if team.ID == "" {
		team.ID = u.newID()
	}
	return u.repo.CreateTeam(ctx, team)
}

// Team returns team with members by id.
func (u *Usecase) Team(ctx context.Context, teamID string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTeam(ctx, teamID)
}

// SetActiveUser toggles user activity flag and returns updated user.
func (u *Usecase) SetActiveUser(ctx context.Context, userID string, isActive bool) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.SetUserActive(ctx, userID, isActive)
}

// CreateProject creates a project owned by a team.
func (u *Usecase) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" || project.TeamID == "" {
		return nil, fmt.Errorf("%w: name and team_id are required", entities.ErrInvalidArgument)
	}
	if project.ID == "" {
		project.ID = u.newID()
	}
	return u.repo.CreateProject(ctx, project)
}

// Project returns a project by id.
func (u *Usecase) Project(ctx context.Context, projectID string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return nil, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetProject(ctx, projectID)
}
