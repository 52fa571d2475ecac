// Package domain contains application usecases orchestrating domain logic by team.
package domain

import (
	"context"
	"fmt"
	"strings"

	"task-tracker/internal/entities"

	"github.com/google/uuid"
)

// CreateTeam creates a team led by the requester.
func (u *Usecase) CreateTeam(ctx context.Context, name string, leaderID uuid.UUID) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		u.log.Errorw("failed to create team: missing name")
		return nil, fmt.Errorf("%w: team name is required", entities.ErrInvalidArgument)
	}

	return u.repo.CreateTeam(ctx, entities.Team{
		ID:       uuid.New(),
		Name:     name,
		LeaderID: leaderID,
	})
}

// Team returns the team with members. Members and the leader only.
func (u *Usecase) Team(ctx context.Context, teamID, requesterID uuid.UUID) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	team, err := u.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !team.IsLeader(requesterID) && !team.HasMember(requesterID) {
		return nil, entities.ErrPermissionDenied
	}
	return team, nil
}

// MyTeams returns teams the user belongs to.
func (u *Usecase) MyTeams(ctx context.Context, userID uuid.UUID) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListUserTeams(ctx, userID)
}

// AddTeamMember enrolls a user by username. Leader-only, enforced in storage.
func (u *Usecase) AddTeamMember(ctx context.Context, teamID, requesterID uuid.UUID, username string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", entities.ErrInvalidArgument)
	}
	return u.repo.AddTeamMember(ctx, teamID, requesterID, username)
}

// RemoveTeamMember drops a member. Leader-only, enforced in storage.
func (u *Usecase) RemoveTeamMember(ctx context.Context, teamID, requesterID, memberID uuid.UUID) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.RemoveTeamMember(ctx, teamID, requesterID, memberID)
}

// DeleteTeam removes the team. Leader-only, enforced in storage.
func (u *Usecase) DeleteTeam(ctx context.Context, teamID, requesterID uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteTeam(ctx, teamID, requesterID)
}
