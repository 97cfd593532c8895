// Package lifecycle holds the task and sprint state machines. Functions here
// are pure: time is passed in and nothing touches the store.
package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/Durga62823/work-board-sub000/internal/entities"
)

// Clock returns the current time.
type Clock func() time.Time

// NewTask validates creation fields and returns the task stamped at now.
// An initial status other than TODO applies its entry side effects.
func NewTask(t entities.Task, now time.Time) (entities.Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return entities.Task{}, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}
	if t.Status == "" {
		t.Status = entities.TaskTodo
	}
	if t.Priority == "" {
		t.Priority = entities.PriorityMedium
	}
	t.AssigneeID = normalizeRef(t.AssigneeID)
	t.ProjectID = normalizeRef(t.ProjectID)
	t.SprintID = normalizeRef(t.SprintID)
	t.Tags = normalizeTags(t.Tags)
	if t.BlockedReason != nil {
		v := strings.TrimSpace(*t.BlockedReason)
		t.BlockedReason = &v
	}
	t.StartedAt = nil
	t.CompletedAt = nil
	t.CreatedAt = now
	t.UpdatedAt = now

	status := t.Status
	t.Status = entities.TaskTodo
	if err := transition(&t, status, now); err != nil {
		return entities.Task{}, err
	}
	if err := validateTask(t); err != nil {
		return entities.Task{}, err
	}
	return t, nil
}

// ApplyPatch applies p to t in place. On error t is left unchanged.
func ApplyPatch(t *entities.Task, p entities.TaskPatch, now time.Time) error {
	next := *t
	next.Tags = append([]string(nil), t.Tags...)

	if p.Title != nil {
		next.Title = strings.TrimSpace(*p.Title)
		if next.Title == "" {
			return fmt.Errorf("%w: title must not be empty", entities.ErrInvalidArgument)
		}
	}
	if p.Description != nil {
		next.Description = *p.Description
	}
	if p.Priority != nil {
		next.Priority = *p.Priority
	}
	if p.AssigneeID != nil {
		next.AssigneeID = normalizeRef(p.AssigneeID)
	}
	if p.ProjectID != nil {
		next.ProjectID = normalizeRef(p.ProjectID)
	}
	if p.SprintID != nil {
		next.SprintID = normalizeRef(p.SprintID)
	}
	if p.StoryPoints != nil {
		v := *p.StoryPoints
		next.StoryPoints = &v
	}
	if p.EstimatedHours != nil {
		v := *p.EstimatedHours
		next.EstimatedHours = &v
	}
	if p.ActualHours != nil {
		v := *p.ActualHours
		next.ActualHours = &v
	}
	if p.BlockedReason != nil {
		v := strings.TrimSpace(*p.BlockedReason)
		next.BlockedReason = &v
	}
	if p.Tags != nil {
		next.Tags = normalizeTags(*p.Tags)
	}
	if p.DueDate != nil {
		v := *p.DueDate
		next.DueDate = &v
	}

	status := next.Status
	if p.Status != nil {
		status = *p.Status
	}
	if err := transition(&next, status, now); err != nil {
		return err
	}
	if err := validateTask(next); err != nil {
		return err
	}

	next.UpdatedAt = now
	*t = next
	return nil
}

// transition moves t into status and applies the first-entry timestamps.
// Any status may follow any other.
func transition(t *entities.Task, status entities.TaskStatus, now time.Time) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, status)
	}
	t.Status = status

	switch status {
	case entities.TaskInProgress:
		if t.StartedAt == nil {
			started := now
			// startedAt never follows completedAt.
			if t.CompletedAt != nil && t.CompletedAt.Before(started) {
				started = *t.CompletedAt
			}
			t.StartedAt = &started
		}
	case entities.TaskDone:
		if t.CompletedAt == nil {
			completed := now
			t.CompletedAt = &completed
		}
	}

	if status != entities.TaskBlocked {
		t.BlockedReason = nil
	}
	return nil
}

func validateTask(t entities.Task) error {
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", entities.ErrInvalidArgument, t.Priority)
	}
	if t.Status == entities.TaskBlocked && (t.BlockedReason == nil || *t.BlockedReason == "") {
		return fmt.Errorf("%w: blocked_reason is required when status is BLOCKED", entities.ErrInvalidArgument)
	}
	if t.StoryPoints != nil && *t.StoryPoints < 0 {
		return fmt.Errorf("%w: story_points must be non-negative", entities.ErrInvalidArgument)
	}
	if t.EstimatedHours != nil && *t.EstimatedHours < 0 {
		return fmt.Errorf("%w: estimated_hours must be non-negative", entities.ErrInvalidArgument)
	}
	if t.ActualHours != nil && *t.ActualHours < 0 {
		return fmt.Errorf("%w: actual_hours must be non-negative", entities.ErrInvalidArgument)
	}
	return nil
}

func normalizeRef(ref *string) *string {
	if ref == nil {
		return nil
	}
	v := strings.TrimSpace(*ref)
	if v == "" {
		return nil
	}
	return &v
}

// normalizeTags trims, drops empties and removes duplicates keeping first order.
func normalizeTags(tags []string) []string {
	res := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		res = append(res, tag)
	}
	return res
}
