// Package entities contains core business entities.
package entities

import "time"

// WorkloadSnapshot is the active load of one team member.
type WorkloadSnapshot struct {
	UserID          string  `json:"user_id"`
	Username        string  `json:"username"`
	TaskCount       int     `json:"task_count"`
	StoryPoints     int     `json:"story_points"`
	EstimatedHours  float64 `json:"estimated_hours"`
	BlockedCount    int     `json:"blocked_count"`
	InProgressCount int     `json:"in_progress_count"`
}

// SprintVelocity is the completed points of one sprint.
type SprintVelocity struct {
	SprintID        string    `json:"sprint_id"`
	Name            string    `json:"name"`
	EndDate         time.Time `json:"end_date"`
	CompletedPoints int       `json:"completed_points"`
	CommittedPoints int       `json:"committed_points"`
}

// VelocityHistory holds velocity of recent completed sprints, most recent first.
type VelocityHistory struct {
	TeamID      string           `json:"team_id"`
	Sprints     []SprintVelocity `json:"sprints"`
	AvgVelocity float64          `json:"avg_velocity"`
}

// BurndownSeries is ideal vs actual remaining points per sprint day.
type BurndownSeries struct {
	SprintID    string    `json:"sprint_id"`
	TotalPoints int       `json:"total_points"`
	SprintDays  int       `json:"sprint_days"`
	Days        []int     `json:"days"`
	Ideal       []float64 `json:"ideal"`
	Actual      []int     `json:"actual"`
}

// TaskTiming is lead and cycle time of one completed task, in days.
type TaskTiming struct {
	TaskID      string    `json:"task_id"`
	Title       string    `json:"title"`
	CompletedAt time.Time `json:"completed_at"`
	LeadTime    float64   `json:"lead_time_days"`
	CycleTime   float64   `json:"cycle_time_days"`

	// Started is false when the task reached DONE without entering IN_PROGRESS.
	Started bool `json:"started"`
}

// TaskMetrics summarises lead and cycle time over a window.
type TaskMetrics struct {
	TeamID       string       `json:"team_id"`
	WindowDays   int          `json:"window_days"`
	Count        int          `json:"count"`
	AvgLeadTime  float64      `json:"avg_lead_time_days"`
	AvgCycleTime float64      `json:"avg_cycle_time_days"`
	Tasks        []TaskTiming `json:"tasks"`
}
