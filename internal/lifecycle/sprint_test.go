package lifecycle

import (
	"testing"
	"time"

	"github.com/Durga62823/work-board-sub000/internal/entities"

	"github.com/stretchr/testify/require"
)

func newPlanning(t *testing.T) entities.Sprint {
	t.Helper()
	s, err := NewSprint(entities.Sprint{
		Name:      "Sprint 14",
		TeamID:    "team-1",
		StartDate: t0,
		EndDate:   t0.AddDate(0, 0, 14),
	}, t0)
	require.NoError(t, err)
	return s
}

func TestNewSprintStartsInPlanning(t *testing.T) {
	s := newPlanning(t)
	require.Equal(t, entities.SprintPlanning, s.Status)
	require.Nil(t, s.Velocity)
	require.Nil(t, s.RetrospectiveNotes)
}

func TestNewSprintValidation(t *testing.T) {
	tests := []struct {
		name   string
		sprint entities.Sprint
	}{
		{"missing name", entities.Sprint{TeamID: "t", StartDate: t0, EndDate: t0.Add(time.Hour)}},
		{"missing team", entities.Sprint{Name: "s", StartDate: t0, EndDate: t0.Add(time.Hour)}},
		{"start equals end", entities.Sprint{Name: "s", TeamID: "t", StartDate: t0, EndDate: t0}},
		{"start after end", entities.Sprint{Name: "s", TeamID: "t", StartDate: t0, EndDate: t0.Add(-time.Hour)}},
		{"negative capacity", entities.Sprint{Name: "s", TeamID: "t", StartDate: t0, EndDate: t0.Add(time.Hour), CapacityHours: ptr(-1.0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSprint(tt.sprint, t0)
			require.ErrorIs(t, err, entities.ErrInvalidArgument)
		})
	}
}

func TestSprintForwardLifecycle(t *testing.T) {
	s := newPlanning(t)

	require.NoError(t, Start(&s, t0.Add(time.Hour)))
	require.Equal(t, entities.SprintActive, s.Status)
	require.NoError(t, Start(&s, t0.Add(2*time.Hour)))

	Complete(&s, ptr("  shipped auth revamp "), t0.AddDate(0, 0, 14))
	require.Equal(t, entities.SprintCompleted, s.Status)
	require.Equal(t, "shipped auth revamp", *s.RetrospectiveNotes)
	require.Nil(t, s.Velocity)

	require.ErrorIs(t, Start(&s, t0.AddDate(0, 0, 15)), entities.ErrSprintCompleted)
	require.ErrorIs(t, Start(&s, t0.AddDate(0, 0, 15)), entities.ErrConflict)
}

func TestCompleteKeepsNotesWhenNoneGiven(t *testing.T) {
	s := newPlanning(t)
	Complete(&s, ptr("first"), t0)
	Complete(&s, nil, t0.Add(time.Hour))
	require.Equal(t, "first", *s.RetrospectiveNotes)
}

func TestRecordVelocityRequiresCompleted(t *testing.T) {
	s := newPlanning(t)
	require.ErrorIs(t, RecordVelocity(&s, 21, t0), entities.ErrSprintNotCompleted)

	Complete(&s, nil, t0)
	require.NoError(t, RecordVelocity(&s, 21, t0))
	require.Equal(t, 21, *s.Velocity)
}
