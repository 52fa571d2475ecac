// Package api contains transport request and response models.
package api

import "time"

// ErrorResponseErrorCode enumerates machine-readable error codes.
type ErrorResponseErrorCode string

const (
	// INVALIDARGUMENT marks failed input validation.
	INVALIDARGUMENT ErrorResponseErrorCode = "INVALID_ARGUMENT"
	// INVALIDCREDENTIALS marks a failed login attempt.
	INVALIDCREDENTIALS ErrorResponseErrorCode = "INVALID_CREDENTIALS"
	// UNAUTHENTICATED marks a missing or revoked session.
	UNAUTHENTICATED ErrorResponseErrorCode = "UNAUTHENTICATED"
	// PERMISSIONDENIED marks an operation the requester may not perform.
	PERMISSIONDENIED ErrorResponseErrorCode = "PERMISSION_DENIED"
	// NOTFOUND marks a missing resource.
	NOTFOUND ErrorResponseErrorCode = "NOT_FOUND"
	// USERNAMETAKEN marks a signup username conflict.
	USERNAMETAKEN ErrorResponseErrorCode = "USERNAME_TAKEN"
	// TEAMEXISTS marks a team name conflict.
	TEAMEXISTS ErrorResponseErrorCode = "TEAM_EXISTS"
	// INTERNAL marks an unexpected server-side failure.
	INTERNAL ErrorResponseErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// SignupRequest carries new account credentials.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse returns the bearer token and the account.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// User is the transport shape of an account. The password hash never leaves the server.
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// CreateTeamRequest carries a new team name.
type CreateTeamRequest struct {
	Name string `json:"name"`
}

// AddMemberRequest enrolls a user into a team by username.
type AddMemberRequest struct {
	Username string `json:"username"`
}

// Team is the transport shape of a team with members.
type Team struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LeaderID string `json:"leader_id"`
	Members  []User `json:"members"`
}

// CreateTaskRequest carries new task fields.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	TeamID      *string `json:"team_id,omitempty"`
}

// UpdateTaskRequest carries the editable task fields.
type UpdateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TeamID      *string  `json:"team_id,omitempty"`
	Assignees   []string `json:"assignees,omitempty"`
}

// CommentRequest carries a new comment body.
type CommentRequest struct {
	Body string `json:"body"`
}

// Comment is the transport shape of a task comment.
type Comment struct {
	ID        string     `json:"id"`
	AuthorID  string     `json:"author_id"`
	Body      string     `json:"body"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Task is the transport shape of a task detail.
type Task struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	CreatorID     string     `json:"creator_id"`
	TeamID        *string    `json:"team_id,omitempty"`
	Status        string     `json:"status"`
	Assignees     []string   `json:"assignees"`
	AcceptedBy    *string    `json:"accepted_by,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	AcceptedDate  *time.Time `json:"accepted_date,omitempty"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	Comments      []Comment  `json:"comments,omitempty"`
}

// TaskShort is a compact task projection for listings.
type TaskShort struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	CreatorID string     `json:"creator_id"`
	Status    string     `json:"status"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
