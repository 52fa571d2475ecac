// Package domain contains application usecases orchestrating domain logic by account.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"task-tracker/internal/auth"
	"task-tracker/internal/entities"

	"github.com/google/uuid"
)

// SignUp registers a new account with a bcrypt-hashed password.
func (u *Usecase) SignUp(ctx context.Context, username, password string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", entities.ErrInvalidArgument)
	}
	if len(password) < u.minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", entities.ErrInvalidArgument, u.minPasswordLen)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := u.repo.CreateUser(ctx, entities.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	u.log.Infow("user signed up", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// LogIn verifies credentials, opens a session and returns a signed token.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (u *Usecase) LogIn(ctx context.Context, username, password string) (string, *entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if username == "" || password == "" {
		return "", nil, fmt.Errorf("%w: username and password are required", entities.ErrInvalidArgument)
	}

	user, err := u.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return "", nil, entities.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, entities.ErrInvalidCredentials
	}

	session := entities.Session{ID: uuid.New(), UserID: user.ID}
	if err := u.repo.CreateSession(ctx, session); err != nil {
		return "", nil, err
	}

	token, err := u.tokens.Issue(user.ID, session.ID)
	if err != nil {
		return "", nil, err
	}

	u.log.Infow("user logged in", "user_id", user.ID)
	return token, user, nil
}

// LogOut revokes the session. Idempotent.
func (u *Usecase) LogOut(ctx context.Context, sessionID uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.repo.DeleteSession(ctx, sessionID); err != nil {
		return err
	}
	u.log.Infow("session revoked", "session_id", sessionID)
	return nil
}

// CheckSession confirms the session is still live.
func (u *Usecase) CheckSession(ctx context.Context, sessionID uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	exists, err := u.repo.SessionExists(ctx, sessionID)
	if err != nil {
		return err
	}
	if !exists {
		return entities.ErrUnauthenticated
	}
	return nil
}
