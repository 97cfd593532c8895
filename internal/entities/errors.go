// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound signals a referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden signals the actor lacks the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict signals a state conflict with the stored record.
	ErrConflict = errors.New("conflict")

	// ErrTaskNotFound signals missing task.
	ErrTaskNotFound = fmt.Errorf("task %w", ErrNotFound)
	// ErrSprintNotFound signals missing sprint.
	ErrSprintNotFound = fmt.Errorf("sprint %w", ErrNotFound)
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = fmt.Errorf("team %w", ErrNotFound)
	// ErrProjectNotFound signals missing project.
	ErrProjectNotFound = fmt.Errorf("project %w", ErrNotFound)
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

	// ErrTeamExists signals team name conflict.
	ErrTeamExists = fmt.Errorf("%w: team exists", ErrConflict)
	// ErrSprintCompleted signals a lifecycle action on a completed sprint.
	ErrSprintCompleted = fmt.Errorf("%w: sprint completed", ErrConflict)
	// ErrSprintNotCompleted signals an action that needs a completed sprint.
	ErrSprintNotCompleted = fmt.Errorf("%w: sprint not completed", ErrConflict)
)

// ErrorKind names an error category exposed to callers.
type ErrorKind string

const (
	KindValidation    ErrorKind = "VALIDATION"
	KindNotFound      ErrorKind = "NOT_FOUND"
	KindAuthorization ErrorKind = "AUTHORIZATION"
	KindConflict      ErrorKind = "CONFLICT"
	KindInternal      ErrorKind = "INTERNAL"
)

// KindOf classifies err into one of the exposed kinds.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrForbidden):
		return KindAuthorization
	case errors.Is(err, ErrConflict):
		return KindConflict
	default:
		return KindInternal
	}
}
