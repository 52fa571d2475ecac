// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidCredentials signals a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated signals a missing, expired or revoked session.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrPermissionDenied signals an operation the requester may not perform.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrTaskNotFound signals missing task.
	ErrTaskNotFound = errors.New("task not found")
	// ErrUsernameTaken signals username conflict on signup.
	ErrUsernameTaken = errors.New("username taken")
	// ErrTeamExists signals team name conflict.
	ErrTeamExists = errors.New("team exists")
)
