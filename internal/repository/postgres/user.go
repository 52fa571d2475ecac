package postgres

import (
	"context"
	"errors"
	"fmt"

	"task-tracker/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertUserQuery = `
INSERT INTO users(id, username, password_hash)
VALUES ($1, $2, $3)
RETURNING created_at`
	selectUserByNameQuery = `SELECT id, username, password_hash, created_at FROM users WHERE username=$1`
	selectUserByIDQuery   = `SELECT id, username, password_hash, created_at FROM users WHERE id=$1`

	insertSessionQuery = `INSERT INTO sessions(id, user_id) VALUES ($1, $2)`
	sessionExistsQuery = `SELECT EXISTS(SELECT 1 FROM sessions WHERE id=$1)`
	deleteSessionQuery = `DELETE FROM sessions WHERE id=$1`
)

// CreateUser inserts a new account. A username conflict maps to ErrUsernameTaken.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	err := p.db.QueryRow(ctx, insertUserQuery, user.ID, user.Username, user.PasswordHash).
		Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrUsernameTaken
		}
		p.log.Errorw("failed to insert user", "error", err, "username", user.Username)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", user.ID, "username", user.Username)
	return &user, nil
}

// GetUserByUsername fetches an account by username, including the password hash.
func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserByNameQuery, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}

// GetUser fetches an account by id.
func (p *Postgres) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserByIDQuery, id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// CreateSession records a login session.
func (p *Postgres) CreateSession(ctx context.Context, session entities.Session) error {
	if _, err := p.db.Exec(ctx, insertSessionQuery, session.ID, session.UserID); err != nil {
		p.log.Errorw("failed to insert session", "error", err, "user_id", session.UserID)
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// SessionExists reports whether the session is still live.
func (p *Postgres) SessionExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := p.db.QueryRow(ctx, sessionExistsQuery, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("session exists: %w", err)
	}
	return exists, nil
}

// DeleteSession revokes a session. Deleting an absent session is a no-op.
func (p *Postgres) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if _, err := p.db.Exec(ctx, deleteSessionQuery, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
