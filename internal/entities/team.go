// Package entities contains core business entities.
package entities

import "github.com/google/uuid"

// Team aggregates members under a leader. The leader is always also a member.
type Team struct {
	ID       uuid.UUID
	Name     string
	LeaderID uuid.UUID
	Members  []User
}

// IsLeader reports whether the user leads the team.
func (t Team) IsLeader(userID uuid.UUID) bool {
	return t.LeaderID == userID
}

// HasMember reports whether the user belongs to the team.
func (t Team) HasMember(userID uuid.UUID) bool {
	for _, m := range t.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}
