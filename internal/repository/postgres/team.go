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
	insertTeamQuery       = `INSERT INTO teams(id, name, leader_id) VALUES ($1, $2, $3)`
	insertTeamMemberQuery = `INSERT INTO team_members(team_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	selectTeamQuery       = `SELECT id, name, leader_id FROM teams WHERE id=$1`
	selectTeamLockQuery   = `SELECT leader_id FROM teams WHERE id=$1 FOR UPDATE`
	selectTeamMembersQuery = `
SELECT u.id, u.username, u.created_at
FROM team_members m
JOIN users u ON u.id = m.user_id
WHERE m.team_id=$1
ORDER BY u.username`
	selectUserTeamsQuery = `
SELECT t.id, t.name, t.leader_id
FROM teams t
JOIN team_members m ON m.team_id = t.id
WHERE m.user_id=$1
ORDER BY t.name`
	selectUserIDByNameQuery = `SELECT id FROM users WHERE username=$1`
	deleteTeamMemberQuery   = `DELETE FROM team_members WHERE team_id=$1 AND user_id=$2`
	deleteTeamQuery         = `DELETE FROM teams WHERE id=$1`
	teamMemberExistsQuery   = `SELECT EXISTS(SELECT 1 FROM team_members WHERE team_id=$1 AND user_id=$2)`
)

// CreateTeam inserts a team and enrolls the leader as its first member.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, insertTeamQuery, team.ID, team.Name, team.LeaderID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrTeamExists
		}
		return nil, fmt.Errorf("insert team: %w", err)
	}

	if _, err := tx.Exec(ctx, insertTeamMemberQuery, team.ID, team.LeaderID); err != nil {
		return nil, fmt.Errorf("enroll leader: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("team created", "team_id", team.ID, "name", team.Name, "leader_id", team.LeaderID)
	return p.GetTeam(ctx, team.ID)
}

// GetTeam fetches a team with members by id.
func (p *Postgres) GetTeam(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	var team entities.Team
	if err := p.db.QueryRow(ctx, selectTeamQuery, id).Scan(&team.ID, &team.Name, &team.LeaderID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	members, err := p.teamMembers(ctx, id)
	if err != nil {
		return nil, err
	}
	team.Members = members

	return &team, nil
}

// ListUserTeams returns teams the user belongs to, members included.
func (p *Postgres) ListUserTeams(ctx context.Context, userID uuid.UUID) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, selectUserTeamsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list user teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.LeaderID); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	for i := range teams {
		members, err := p.teamMembers(ctx, teams[i].ID)
		if err != nil {
			return nil, err
		}
		teams[i].Members = members
	}

	return teams, nil
}

// AddTeamMember enrolls a user by username. Leader-only; adding an existing
// member is a no-op.
func (p *Postgres) AddTeamMember(ctx context.Context, teamID, requesterID uuid.UUID, username string) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := p.requireLeader(ctx, tx, teamID, requesterID); err != nil {
		return nil, err
	}

	var userID uuid.UUID
	if err := tx.QueryRow(ctx, selectUserIDByNameQuery, username).Scan(&userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("member lookup: %w", err)
	}

	if _, err := tx.Exec(ctx, insertTeamMemberQuery, teamID, userID); err != nil {
		return nil, fmt.Errorf("insert member: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("team member added", "team_id", teamID, "user_id", userID)
	return p.GetTeam(ctx, teamID)
}

// RemoveTeamMember drops a member. Leader-only; the leader cannot be removed.
func (p *Postgres) RemoveTeamMember(ctx context.Context, teamID, requesterID, memberID uuid.UUID) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := p.requireLeader(ctx, tx, teamID, requesterID); err != nil {
		return nil, err
	}

	if memberID == requesterID {
		return nil, fmt.Errorf("%w: leader cannot be removed", entities.ErrInvalidArgument)
	}

	tag, err := tx.Exec(ctx, deleteTeamMemberQuery, teamID, memberID)
	if err != nil {
		return nil, fmt.Errorf("delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrUserNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("team member removed", "team_id", teamID, "user_id", memberID)
	return p.GetTeam(ctx, teamID)
}

// DeleteTeam removes the team. Leader-only. Tasks owned by the team survive
// with their team reference cleared (ON DELETE SET NULL).
func (p *Postgres) DeleteTeam(ctx context.Context, teamID, requesterID uuid.UUID) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := p.requireLeader(ctx, tx, teamID, requesterID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, deleteTeamQuery, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("team deleted", "team_id", teamID)
	return nil
}

// IsTeamMember reports whether the user belongs to the team.
func (p *Postgres) IsTeamMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error) {
	var exists bool
	if err := p.db.QueryRow(ctx, teamMemberExistsQuery, teamID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("team member exists: %w", err)
	}
	return exists, nil
}

func (p *Postgres) requireLeader(ctx context.Context, tx pgx.Tx, teamID, requesterID uuid.UUID) error {
	var leaderID uuid.UUID
	if err := tx.QueryRow(ctx, selectTeamLockQuery, teamID).Scan(&leaderID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrTeamNotFound
		}
		return fmt.Errorf("team lookup: %w", err)
	}
	if leaderID != requesterID {
		return entities.ErrPermissionDenied
	}
	return nil
}

func (p *Postgres) teamMembers(ctx context.Context, teamID uuid.UUID) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, selectTeamMembersQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Username, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan members: %w", err)
		}
		members = append(members, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return members, nil
}
