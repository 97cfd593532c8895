// Package entities contains core business entities.
package entities

import "time"

// SprintStatus enumerates sprint lifecycle states.
type SprintStatus string

const (
	SprintPlanning  SprintStatus = "PLANNING"
	SprintActive    SprintStatus = "ACTIVE"
	SprintCompleted SprintStatus = "COMPLETED"
)

// Sprint is a time-boxed work period of a team.
type Sprint struct {
	ID                 string
	Name               string
	Goal               string
	TeamID             string
	StartDate          time.Time
	EndDate            time.Time
	Status             SprintStatus
	CapacityHours      *float64
	Velocity           *int
	RetrospectiveNotes *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
