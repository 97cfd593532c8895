package lifecycle

import (
	"testing"
	"time"

	"github.com/Durga62823/work-board-sub000/internal/entities"

	"pgregory.net/rapid"
)

var allStatuses = []entities.TaskStatus{
	entities.TaskTodo,
	entities.TaskInProgress,
	entities.TaskInReview,
	entities.TaskBlocked,
	entities.TaskDone,
}

// For any sequence of moves, startedAt and completedAt are stamped at the
// first entry into IN_PROGRESS and DONE and never change afterwards, and
// startedAt never follows completedAt.
func TestPropertyTimestampsSetOnce(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		task, err := NewTask(entities.Task{Title: "prop"}, t0)
		if err != nil {
			rt.Fatalf("new task: %v", err)
		}

		var firstStart, firstDone *time.Time
		steps := rapid.IntRange(1, 30).Draw(rt, "steps")
		now := t0
		for i := 0; i < steps; i++ {
			now = now.Add(time.Duration(rapid.IntRange(1, 600).Draw(rt, "minutes")) * time.Minute)
			status := rapid.SampledFrom(allStatuses).Draw(rt, "status")
			patch := entities.TaskPatch{Status: &status}
			if status == entities.TaskBlocked {
				reason := "blocked"
				patch.BlockedReason = &reason
			}
			if err := ApplyPatch(&task, patch, now); err != nil {
				rt.Fatalf("apply %s: %v", status, err)
			}

			if status == entities.TaskInProgress && firstStart == nil {
				v := *task.StartedAt
				firstStart = &v
			}
			if status == entities.TaskDone && firstDone == nil {
				v := now
				firstDone = &v
			}

			if firstStart != nil && !task.StartedAt.Equal(*firstStart) {
				rt.Fatalf("startedAt changed: %v -> %v", *firstStart, *task.StartedAt)
			}
			if firstDone != nil && !task.CompletedAt.Equal(*firstDone) {
				rt.Fatalf("completedAt changed: %v -> %v", *firstDone, *task.CompletedAt)
			}
			if task.StartedAt != nil && task.CompletedAt != nil && task.StartedAt.After(*task.CompletedAt) {
				rt.Fatalf("startedAt %v after completedAt %v", *task.StartedAt, *task.CompletedAt)
			}
			if task.Status != entities.TaskBlocked && task.BlockedReason != nil {
				rt.Fatalf("blocked reason kept in status %s", task.Status)
			}
		}
	})
}
