package repository

import "github.com/miftad456/task-management-sub001/internal/domain/entity"

type LeaveRequestRepository interface {
	Create(r *entity.LeaveRequest) error
	GetByID(id string) (*entity.LeaveRequest, error)
	// ListByTeam filters by status; an empty status means all.
	ListByTeam(teamID string, status entity.LeaveStatus) ([]entity.LeaveRequest, error)
	// UpdateStatus must only touch rows still pending, so a lost race
	// surfaces as a conflict rather than a silent double write.
	UpdateStatus(r *entity.LeaveRequest) error
}
