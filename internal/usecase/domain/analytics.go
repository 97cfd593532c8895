package domain

import (
	"context"
	"fmt"

	"github.com/Durga62823/work-board-sub000/internal/analytics"
	"github.com/Durga62823/work-board-sub000/internal/entities"
)

// TeamWorkload returns open work per active member of the team.
func (u *Usecase) TeamWorkload(ctx context.Context, teamID string) ([]entities.WorkloadSnapshot, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return nil, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	members, err := u.repo.ActiveMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return []entities.WorkloadSnapshot{}, nil
	}
	tasks, err := u.repo.OpenTasksByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return analytics.Workload(members, tasks), nil
}

// SprintVelocity returns completed points of the last n completed sprints.
// n <= 0 falls back to the configured default.
func (u *Usecase) SprintVelocity(ctx context.Context, teamID string, n int) (entities.VelocityHistory, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return entities.VelocityHistory{}, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	if n <= 0 {
		n = u.engine.VelocitySprints
	}
	sprints, err := u.repo.CompletedSprints(ctx, teamID, n)
	if err != nil {
		return entities.VelocityHistory{}, err
	}
	ids := make([]string, 0, len(sprints))
	for _, s := range sprints {
		ids = append(ids, s.ID)
	}
	bySprint, err := u.repo.TasksBySprints(ctx, ids)
	if err != nil {
		return entities.VelocityHistory{}, err
	}
	return analytics.Velocity(teamID, sprints, bySprint), nil
}

// SprintBurndown returns the ideal and actual remaining points per day.
func (u *Usecase) SprintBurndown(ctx context.Context, sprintID string) (entities.BurndownSeries, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sprintID == "" {
		return entities.BurndownSeries{}, fmt.Errorf("%w: sprint_id is required", entities.ErrInvalidArgument)
	}
	s, err := u.repo.GetSprint(ctx, sprintID)
	if err != nil {
		return entities.BurndownSeries{}, err
	}
	tasks, err := u.repo.ListTasks(ctx, entities.TaskFilter{SprintID: &sprintID})
	if err != nil {
		return entities.BurndownSeries{}, err
	}
	return analytics.Burndown(*s, tasks), nil
}

// TaskMetrics returns lead and cycle time of team tasks completed within
// the last windowDays. windowDays <= 0 falls back to the configured default.
func (u *Usecase) TaskMetrics(ctx context.Context, teamID string, windowDays int) (entities.TaskMetrics, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID == "" {
		return entities.TaskMetrics{}, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	if windowDays <= 0 {
		windowDays = u.engine.MetricsWindowDays
	}
	since := u.clock().AddDate(0, 0, -windowDays)
	tasks, err := u.repo.CompletedTasksByTeam(ctx, teamID, since)
	if err != nil {
		return entities.TaskMetrics{}, err
	}
	return analytics.TaskMetrics(teamID, windowDays, since, tasks), nil
}
