package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/Durga62823/work-board-sub000/internal/entities"

	"pgregory.net/rapid"
)

func drawSprintTasks(rt *rapid.T, sprintDays int, withPoints bool) []entities.Task {
	n := rapid.IntRange(0, 15).Draw(rt, "tasks")
	tasks := make([]entities.Task, 0, n)
	for i := 0; i < n; i++ {
		task := entities.Task{Status: rapid.SampledFrom([]entities.TaskStatus{
			entities.TaskTodo, entities.TaskInProgress, entities.TaskDone,
		}).Draw(rt, "status")}
		if withPoints {
			task.StoryPoints = ptr(rapid.IntRange(0, 13).Draw(rt, "points"))
		}
		if task.Status == entities.TaskDone {
			offset := rapid.IntRange(-48, (sprintDays+2)*24).Draw(rt, "completedHour")
			task.CompletedAt = ptr(start.Add(time.Duration(offset) * time.Hour))
		}
		tasks = append(tasks, task)
	}
	return tasks
}

// For any sprint whose tasks carry no points, the ideal series is all zeros
// and no value is NaN or infinite, whatever the sprint length.
func TestPropertyBurndownZeroPointsIsFlat(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		hours := rapid.IntRange(0, 40*24).Draw(rt, "sprintHours")
		sprint := entities.Sprint{StartDate: start, EndDate: start.Add(time.Duration(hours) * time.Hour)}
		res := Burndown(sprint, drawSprintTasks(rt, SprintDays(sprint), false))

		for d, v := range res.Ideal {
			if v != 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				rt.Fatalf("ideal[%d] = %v, want 0", d, v)
			}
			if res.Actual[d] != 0 {
				rt.Fatalf("actual[%d] = %d, want 0", d, res.Actual[d])
			}
		}
	})
}

// For any sprint, both series share indices 0..sprintDays, actual never
// increases and stays within [0, total], and ideal falls linearly to zero.
func TestPropertyBurndownShape(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		hours := rapid.IntRange(1, 40*24).Draw(rt, "sprintHours")
		sprint := entities.Sprint{StartDate: start, EndDate: start.Add(time.Duration(hours) * time.Hour)}
		res := Burndown(sprint, drawSprintTasks(rt, SprintDays(sprint), true))

		if len(res.Days) != res.SprintDays+1 || len(res.Ideal) != len(res.Days) || len(res.Actual) != len(res.Days) {
			rt.Fatalf("length mismatch: days=%d ideal=%d actual=%d sprintDays=%d",
				len(res.Days), len(res.Ideal), len(res.Actual), res.SprintDays)
		}
		if math.Abs(res.Ideal[res.SprintDays]) > 1e-9 {
			rt.Fatalf("ideal last = %v, want 0", res.Ideal[res.SprintDays])
		}
		for d := range res.Days {
			if res.Days[d] != d {
				rt.Fatalf("days[%d] = %d", d, res.Days[d])
			}
			if res.Actual[d] < 0 || res.Actual[d] > res.TotalPoints {
				rt.Fatalf("actual[%d] = %d out of range", d, res.Actual[d])
			}
			if d > 0 && res.Actual[d] > res.Actual[d-1] {
				rt.Fatalf("actual increased at day %d", d)
			}
		}
	})
}

// Velocity average equals the mean of per-sprint DONE points, and is zero
// for an empty history.
func TestPropertyVelocityMean(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(rt, "sprints")
		sprints := make([]entities.Sprint, 0, n)
		tasks := make(map[string][]entities.Task, n)
		want := 0
		for i := 0; i < n; i++ {
			id := string(rune('a' + i))
			sprints = append(sprints, entities.Sprint{ID: id})
			done := rapid.IntRange(0, 50).Draw(rt, "done")
			open := rapid.IntRange(0, 50).Draw(rt, "open")
			tasks[id] = []entities.Task{
				{Status: entities.TaskDone, StoryPoints: ptr(done)},
				{Status: entities.TaskInProgress, StoryPoints: ptr(open)},
			}
			want += done
		}

		res := Velocity("team", sprints, tasks)
		expected := 0.0
		if n > 0 {
			expected = float64(want) / float64(n)
		}
		if math.Abs(res.AvgVelocity-expected) > 1e-9 {
			rt.Fatalf("avg = %v, want %v", res.AvgVelocity, expected)
		}
	})
}
