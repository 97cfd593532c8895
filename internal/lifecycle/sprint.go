package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/Durga62823/work-board-sub000/internal/entities"
)

// NewSprint validates creation fields and returns a PLANNING sprint.
func NewSprint(s entities.Sprint, now time.Time) (entities.Sprint, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return entities.Sprint{}, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if strings.TrimSpace(s.TeamID) == "" {
		return entities.Sprint{}, fmt.Errorf("%w: team_id is required", entities.ErrInvalidArgument)
	}
	if !s.StartDate.Before(s.EndDate) {
		return entities.Sprint{}, fmt.Errorf("%w: start_date must be before end_date", entities.ErrInvalidArgument)
	}
	if s.CapacityHours != nil && *s.CapacityHours < 0 {
		return entities.Sprint{}, fmt.Errorf("%w: capacity_hours must be non-negative", entities.ErrInvalidArgument)
	}

	s.Status = entities.SprintPlanning
	s.Velocity = nil
	s.RetrospectiveNotes = nil
	s.CreatedAt = now
	s.UpdatedAt = now
	return s, nil
}

// Start moves s to ACTIVE. Starting an active sprint is a no-op.
func Start(s *entities.Sprint, now time.Time) error {
	switch s.Status {
	case entities.SprintCompleted:
		return entities.ErrSprintCompleted
	case entities.SprintActive:
		return nil
	}
	s.Status = entities.SprintActive
	s.UpdatedAt = now
	return nil
}

// Complete moves s to COMPLETED from any state and records notes when given.
// Velocity is not touched.
func Complete(s *entities.Sprint, notes *string, now time.Time) {
	s.Status = entities.SprintCompleted
	if notes != nil {
		v := strings.TrimSpace(*notes)
		s.RetrospectiveNotes = &v
	}
	s.UpdatedAt = now
}

// RecordVelocity stores the completed points on a completed sprint.
func RecordVelocity(s *entities.Sprint, points int, now time.Time) error {
	if s.Status != entities.SprintCompleted {
		return entities.ErrSprintNotCompleted
	}
	s.Velocity = &points
	s.UpdatedAt = now
	return nil
}
