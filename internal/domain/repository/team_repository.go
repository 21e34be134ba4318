package repository

import "github.com/miftad456/task-management-sub001/internal/domain/entity"

type TeamRepository interface {
	Create(t *entity.Team) error
	GetByID(id string) (*entity.Team, error)
	ListByManager(managerID string) ([]entity.Team, error)
	ListByMember(userID string) ([]entity.Team, error)
	AddMember(teamID, userID string) error
	RemoveMember(teamID, userID string) error
}
