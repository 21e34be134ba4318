package entity

import (
	"time"

	"github.com/miftad456/task-management-sub001/pkg/apperr"
)

// Team groups members under a single manager. The manager is not required
// to be a member; membership is unique per team.
type Team struct {
	ID        string
	Name      string
	ManagerID string
	MemberIDs []string
	CreatedAt time.Time
}

func NewTeam(name, managerID string) (Team, error) {
	if name == "" {
		return Team{}, apperr.Validation("team name is required")
	}
	return Team{Name: name, ManagerID: managerID}, nil
}

func (t Team) HasMember(userID string) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
