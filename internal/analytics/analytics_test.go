package analytics

import (
	"testing"
	"time"

	"github.com/Durga62823/work-board-sub000/internal/entities"

	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func at(days float64) *time.Time {
	t := start.Add(time.Duration(days * float64(24*time.Hour)))
	return &t
}

func TestWorkloadSums(t *testing.T) {
	members := []entities.User{{ID: "a", Username: "Alice"}, {ID: "b", Username: "Bob"}}
	tasks := []entities.Task{
		{ID: "1", Status: entities.TaskTodo, AssigneeID: ptr("a"), StoryPoints: ptr(5), EstimatedHours: ptr(4.0)},
		{ID: "2", Status: entities.TaskInProgress, AssigneeID: ptr("a"), StoryPoints: ptr(3)},
		{ID: "3", Status: entities.TaskBlocked, AssigneeID: ptr("a"), StoryPoints: ptr(2), EstimatedHours: ptr(1.5)},
		{ID: "4", Status: entities.TaskDone, AssigneeID: ptr("a"), StoryPoints: ptr(8)},
		{ID: "5", Status: entities.TaskTodo, StoryPoints: ptr(13)},
		{ID: "6", Status: entities.TaskTodo, AssigneeID: ptr("gone"), StoryPoints: ptr(1)},
	}

	res := Workload(members, tasks)
	require.Len(t, res, 2)

	a, b := res[0], res[1]
	require.Equal(t, "a", a.UserID)
	require.Equal(t, 3, a.TaskCount)
	require.Equal(t, 10, a.StoryPoints)
	require.InDelta(t, 5.5, a.EstimatedHours, 1e-9)
	require.Equal(t, 1, a.BlockedCount)
	require.Equal(t, 1, a.InProgressCount)

	require.Equal(t, entities.WorkloadSnapshot{UserID: "b", Username: "Bob"}, b)
}

func TestWorkloadNoMembers(t *testing.T) {
	res := Workload(nil, []entities.Task{{AssigneeID: ptr("a"), Status: entities.TaskTodo}})
	require.NotNil(t, res)
	require.Empty(t, res)
}

func TestVelocityAverage(t *testing.T) {
	sprints := []entities.Sprint{{ID: "s3"}, {ID: "s2"}, {ID: "s1"}}
	tasks := map[string][]entities.Task{
		"s3": {{Status: entities.TaskDone, StoryPoints: ptr(40)}, {Status: entities.TaskInReview, StoryPoints: ptr(5)}},
		"s2": {{Status: entities.TaskDone, StoryPoints: ptr(10)}, {Status: entities.TaskDone, StoryPoints: ptr(20)}},
		"s1": {{Status: entities.TaskDone, StoryPoints: ptr(20)}, {Status: entities.TaskDone}},
	}

	res := Velocity("team", sprints, tasks)
	require.InDelta(t, 30.0, res.AvgVelocity, 1e-9)
	require.Len(t, res.Sprints, 3)
	require.Equal(t, "s3", res.Sprints[0].SprintID)
	require.Equal(t, 40, res.Sprints[0].CompletedPoints)
	require.Equal(t, 45, res.Sprints[0].CommittedPoints)
}

func TestVelocityNoSprints(t *testing.T) {
	res := Velocity("team", nil, nil)
	require.Zero(t, res.AvgVelocity)
	require.NotNil(t, res.Sprints)
	require.Empty(t, res.Sprints)
}

func TestVelocitySprintWithoutTasks(t *testing.T) {
	res := Velocity("team", []entities.Sprint{{ID: "s1"}}, map[string][]entities.Task{})
	require.Zero(t, res.AvgVelocity)
	require.Zero(t, res.Sprints[0].CompletedPoints)
}

func TestSprintDays(t *testing.T) {
	require.Equal(t, 10, SprintDays(entities.Sprint{StartDate: start, EndDate: start.AddDate(0, 0, 10)}))
	require.Equal(t, 3, SprintDays(entities.Sprint{StartDate: start, EndDate: start.Add(50 * time.Hour)}))
	require.Equal(t, 0, SprintDays(entities.Sprint{StartDate: start, EndDate: start}))
}

func TestBurndownTenDaySprint(t *testing.T) {
	sprint := entities.Sprint{ID: "s", StartDate: start, EndDate: start.AddDate(0, 0, 10)}
	tasks := []entities.Task{
		{Status: entities.TaskDone, StoryPoints: ptr(40), CompletedAt: at(4.5)},
		{Status: entities.TaskInProgress, StoryPoints: ptr(60)},
	}

	res := Burndown(sprint, tasks)
	require.Equal(t, 100, res.TotalPoints)
	require.Equal(t, 10, res.SprintDays)
	require.Len(t, res.Days, 11)
	require.Len(t, res.Ideal, 11)
	require.Len(t, res.Actual, 11)

	require.InDelta(t, 100.0, res.Ideal[0], 1e-9)
	require.InDelta(t, 60.0, res.Ideal[4], 1e-9)
	require.InDelta(t, 0.0, res.Ideal[10], 1e-9)
	require.Equal(t, 100, res.Actual[3])
	require.Equal(t, 60, res.Actual[4])
	require.Equal(t, 60, res.Actual[9])
	require.Equal(t, 60, res.Actual[10])
}

func TestBurndownIgnoresNonDoneAndClampsEarlyCompletion(t *testing.T) {
	sprint := entities.Sprint{StartDate: start, EndDate: start.AddDate(0, 0, 5)}
	tasks := []entities.Task{
		{Status: entities.TaskDone, StoryPoints: ptr(3), CompletedAt: at(-2)},
		{Status: entities.TaskInReview, StoryPoints: ptr(4), CompletedAt: at(1)},
		{Status: entities.TaskDone, StoryPoints: ptr(2), CompletedAt: at(9)},
		{Status: entities.TaskDone, StoryPoints: ptr(1)},
	}

	res := Burndown(sprint, tasks)
	require.Equal(t, 10, res.TotalPoints)
	require.Equal(t, []int{7, 7, 7, 7, 7, 7}, res.Actual)
}

func TestBurndownActualFloorsAtZero(t *testing.T) {
	sprint := entities.Sprint{StartDate: start, EndDate: start.AddDate(0, 0, 2)}
	res := Burndown(sprint, []entities.Task{{Status: entities.TaskDone, StoryPoints: ptr(5), CompletedAt: at(0)}})
	require.Equal(t, []int{0, 0, 0}, res.Actual)
}

func TestBurndownZeroDaySprint(t *testing.T) {
	sprint := entities.Sprint{StartDate: start, EndDate: start}
	res := Burndown(sprint, []entities.Task{
		{Status: entities.TaskDone, StoryPoints: ptr(2), CompletedAt: at(0)},
		{Status: entities.TaskTodo, StoryPoints: ptr(3)},
	})
	require.Equal(t, 0, res.SprintDays)
	require.Equal(t, []int{0}, res.Days)
	require.Equal(t, []float64{5}, res.Ideal)
	require.Equal(t, []int{3}, res.Actual)
}

func TestTaskMetricsLeadAndCycle(t *testing.T) {
	tasks := []entities.Task{{
		ID:          "t1",
		Status:      entities.TaskDone,
		CreatedAt:   start,
		StartedAt:   at(2),
		CompletedAt: at(5),
	}}

	res := TaskMetrics("team", 30, start, tasks)
	require.Equal(t, 1, res.Count)
	require.InDelta(t, 5.0, res.Tasks[0].LeadTime, 1e-9)
	require.InDelta(t, 3.0, res.Tasks[0].CycleTime, 1e-9)
	require.True(t, res.Tasks[0].Started)
	require.InDelta(t, 5.0, res.AvgLeadTime, 1e-9)
	require.InDelta(t, 3.0, res.AvgCycleTime, 1e-9)
}

func TestTaskMetricsUnstartedAndWindow(t *testing.T) {
	tasks := []entities.Task{
		{ID: "skipped", Status: entities.TaskDone, CreatedAt: start, CompletedAt: at(2)},
		{ID: "old", Status: entities.TaskDone, CreatedAt: start.AddDate(0, 0, -60), StartedAt: at(-50), CompletedAt: at(-40)},
		{ID: "reopened", Status: entities.TaskInProgress, CreatedAt: start, StartedAt: at(1), CompletedAt: at(3)},
		{ID: "fast", Status: entities.TaskDone, CreatedAt: start, StartedAt: at(3), CompletedAt: at(4)},
	}

	res := TaskMetrics("team", 30, start.AddDate(0, 0, -30), tasks)
	require.Equal(t, 2, res.Count)
	require.Equal(t, "skipped", res.Tasks[0].TaskID)
	require.False(t, res.Tasks[0].Started)
	require.Zero(t, res.Tasks[0].CycleTime)
	require.InDelta(t, 3.0, res.AvgLeadTime, 1e-9)
	require.InDelta(t, 0.5, res.AvgCycleTime, 1e-9)
}

func TestTaskMetricsEmpty(t *testing.T) {
	res := TaskMetrics("team", 30, start, nil)
	require.Zero(t, res.Count)
	require.Zero(t, res.AvgLeadTime)
	require.Zero(t, res.AvgCycleTime)
	require.NotNil(t, res.Tasks)
}
