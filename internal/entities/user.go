// Package entities contains core business entities.
package entities

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain representation of an account.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    *time.Time
}

// Session is a live login. A session row exists from login until logout;
// tokens whose session is gone are rejected even if the signature is valid.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt *time.Time
}
