package entity

import (
	"time"

	"github.com/miftad456/task-management-sub001/pkg/apperr"
)

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// LeaveFilter adds "all" on top of the three statuses for listing.
func ParseLeaveFilter(s string) (LeaveStatus, error) {
	switch s {
	case "":
		return LeavePending, nil
	case "all":
		return "", nil
	}
	switch LeaveStatus(s) {
	case LeavePending, LeaveApproved, LeaveRejected:
		return LeaveStatus(s), nil
	}
	return "", apperr.Validationf("invalid status filter %q", s)
}

// LeaveRequest is immutable once resolved: the only legal transitions are
// pending -> approved and pending -> rejected.
type LeaveRequest struct {
	ID        string
	TeamID    string
	UserID    string
	Status    LeaveStatus
	Reason    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewLeaveRequest(teamID, userID, reason string) LeaveRequest {
	return LeaveRequest{TeamID: teamID, UserID: userID, Reason: reason, Status: LeavePending}
}

// Resolved returns a copy in the terminal status. The pending check lives
// here, not only in the repository query, so concurrent double-resolution
// is caught even when both callers loaded the same pending snapshot.
func (r LeaveRequest) Resolved(status LeaveStatus) (LeaveRequest, error) {
	if status != LeaveApproved && status != LeaveRejected {
		return LeaveRequest{}, apperr.Validationf("invalid resolution %q", string(status))
	}
	if r.Status != LeavePending {
		return LeaveRequest{}, apperr.Conflict("request already processed")
	}
	r.Status = status
	return r, nil
}
