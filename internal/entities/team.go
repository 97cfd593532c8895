// Package entities contains core business entities.
package entities

// Team aggregates members under a team name.
type Team struct {
	ID      string
	Name    string
	Members []User
}

// Project groups tasks and is owned by a team.
type Project struct {
	ID     string
	Name   string
	TeamID string
}
