package lifecycle

import (
	"testing"
	"time"

	"github.com/Durga62823/work-board-sub000/internal/entities"

	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func newTodo(t *testing.T) entities.Task {
	t.Helper()
	task, err := NewTask(entities.Task{Title: "Write release notes", ReporterID: "u1"}, t0)
	require.NoError(t, err)
	return task
}

func TestNewTaskDefaults(t *testing.T) {
	task := newTodo(t)
	require.Equal(t, entities.TaskTodo, task.Status)
	require.Equal(t, entities.PriorityMedium, task.Priority)
	require.Equal(t, t0, task.CreatedAt)
	require.Equal(t, t0, task.UpdatedAt)
	require.Nil(t, task.StartedAt)
	require.Nil(t, task.CompletedAt)
	require.NotNil(t, task.Tags)
}

func TestNewTaskRequiresTitle(t *testing.T) {
	_, err := NewTask(entities.Task{Title: "   "}, t0)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestNewTaskRejectsNegativeEstimates(t *testing.T) {
	_, err := NewTask(entities.Task{Title: "x", StoryPoints: ptr(-1)}, t0)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = NewTask(entities.Task{Title: "x", EstimatedHours: ptr(-0.5)}, t0)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestNewTaskInitialStatusSideEffects(t *testing.T) {
	task, err := NewTask(entities.Task{Title: "x", Status: entities.TaskInProgress}, t0)
	require.NoError(t, err)
	require.NotNil(t, task.StartedAt)
	require.Equal(t, t0, *task.StartedAt)

	_, err = NewTask(entities.Task{Title: "x", Status: entities.TaskBlocked}, t0)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestNewTaskNormalizesTagsAndRefs(t *testing.T) {
	task, err := NewTask(entities.Task{
		Title:      "x",
		Tags:       []string{"backend", " api ", "", "backend"},
		AssigneeID: ptr(""),
		SprintID:   ptr(" s1 "),
	}, t0)
	require.NoError(t, err)
	require.Equal(t, []string{"backend", "api"}, task.Tags)
	require.Nil(t, task.AssigneeID)
	require.Equal(t, "s1", *task.SprintID)
}

func TestApplyPatchStartedAtSetOnce(t *testing.T) {
	task := newTodo(t)

	t1 := t0.Add(time.Hour)
	require.NoError(t, ApplyPatch(&task, entities.TaskPatch{Status: ptr(entities.TaskInProgress)}, t1))
	require.Equal(t, t1, *task.StartedAt)

	require.NoError(t, ApplyPatch(&task, entities.TaskPatch{Status: ptr(entities.TaskInReview)}, t1.Add(time.Hour)))
	require.NoError(t, ApplyPatch(&task, entities.TaskPatch{Status: ptr(entities.TaskInProgress)}, t1.Add(2*time.Hour)))
	require.Equal(t, t1, *task.StartedAt)
}

func TestApplyPatchCompletedAtSetOnce(t *testing.T) {
	task := newTodo(t)

	t1 := t0.Add(24 * time.Hour)
	require.NoError(t, ApplyPatch(&task, entities.TaskPatch{Status: ptr(entities.TaskDone)}, t1))
	require.Equal(t, t1, *task.CompletedAt)

	require.NoError(t, ApplyPatch(&task, entities.TaskPatch{Status: ptr(entities.TaskTodo)}, t1.Add(time.Hour)))
	require.NoError(t, ApplyPatch(&task, entities.TaskPatch{Status: ptr(entities.TaskDone)}, t1.Add(2*time.Hour)))
	require.Equal(t, t1, *task.CompletedAt)
}

func TestApplyPatchStartAfterDoneKeepsOrder(t *testing.T) {
	task := newTodo(t)
	done := t0.Add(time.Hour)
	require.NoError(t, ApplyPatch(&task, entities.TaskPatch{Status: ptr(entities.TaskDone)}, done))
	require.NoError(t, ApplyPatch(&task, entities.TaskPatch{Status: ptr(entities.TaskInProgress)}, done.Add(time.Hour)))

	require.False(t, task.StartedAt.After(*task.CompletedAt))
	require.Equal(t, done, *task.StartedAt)
}

func TestApplyPatchBlockedRequiresReason(t *testing.T) {
	task := newTodo(t)
	before := task

	err := ApplyPatch(&task, entities.TaskPatch{Status: ptr(entities.TaskBlocked)}, t0.Add(time.Hour))
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	require.Equal(t, before, task)

	err = ApplyPatch(&task, entities.TaskPatch{Status: ptr(entities.TaskBlocked), BlockedReason: ptr("  ")}, t0.Add(time.Hour))
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	require.NoError(t, ApplyPatch(&task, entities.TaskPatch{
		Status:        ptr(entities.TaskBlocked),
		BlockedReason: ptr("waiting on vendor API keys"),
	}, t0.Add(time.Hour)))
	require.Equal(t, "waiting on vendor API keys", *task.BlockedReason)

	require.NoError(t, ApplyPatch(&task, entities.TaskPatch{Status: ptr(entities.TaskInProgress)}, t0.Add(2*time.Hour)))
	require.Nil(t, task.BlockedReason)
}

func TestApplyPatchFieldsIndependentOfStatus(t *testing.T) {
	task := newTodo(t)
	require.NoError(t, ApplyPatch(&task, entities.TaskPatch{
		Status:        ptr(entities.TaskBlocked),
		BlockedReason: ptr("db migration pending"),
	}, t0))

	require.NoError(t, ApplyPatch(&task, entities.TaskPatch{
		AssigneeID:     ptr("u2"),
		Priority:       ptr(entities.PriorityUrgent),
		StoryPoints:    ptr(5),
		EstimatedHours: ptr(6.5),
	}, t0.Add(time.Minute)))
	require.Equal(t, entities.TaskBlocked, task.Status)
	require.Equal(t, "db migration pending", *task.BlockedReason)
	require.Equal(t, "u2", *task.AssigneeID)
	require.Equal(t, entities.PriorityUrgent, task.Priority)
	require.Equal(t, 5, task.Points())
	require.InDelta(t, 6.5, task.Hours(), 1e-9)

	require.NoError(t, ApplyPatch(&task, entities.TaskPatch{AssigneeID: ptr("")}, t0.Add(2*time.Minute)))
	require.Nil(t, task.AssigneeID)
}

func TestApplyPatchRejectsUnknownEnums(t *testing.T) {
	task := newTodo(t)
	require.ErrorIs(t, ApplyPatch(&task, entities.TaskPatch{Status: ptr(entities.TaskStatus("ARCHIVED"))}, t0), entities.ErrInvalidArgument)
	require.ErrorIs(t, ApplyPatch(&task, entities.TaskPatch{Priority: ptr(entities.Priority("P0"))}, t0), entities.ErrInvalidArgument)
	require.ErrorIs(t, ApplyPatch(&task, entities.TaskPatch{Title: ptr("")}, t0), entities.ErrInvalidArgument)
	require.Equal(t, entities.TaskTodo, task.Status)
}

func TestMoveSameStatusIsIdempotent(t *testing.T) {
	once := newTodo(t)
	twice := newTodo(t)
	at := t0.Add(time.Hour)

	require.NoError(t, ApplyPatch(&once, entities.TaskPatch{Status: ptr(entities.TaskInProgress)}, at))
	require.NoError(t, ApplyPatch(&twice, entities.TaskPatch{Status: ptr(entities.TaskInProgress)}, at))
	require.NoError(t, ApplyPatch(&twice, entities.TaskPatch{Status: ptr(entities.TaskInProgress)}, at))
	require.Equal(t, once, twice)
}
