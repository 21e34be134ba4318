package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/miftad456/task-management-sub001/internal/domain/entity"
	"github.com/miftad456/task-management-sub001/internal/domain/policy"
	repo "github.com/miftad456/task-management-sub001/internal/domain/repository"
	"github.com/miftad456/task-management-sub001/pkg/apperr"
)

// LeaveService drives the leave-request workflow: pending -> approved or
// pending -> rejected, both terminal. Resolution is manager-only and the
// requester is notified of the outcome.
type LeaveService struct {
	Leaves     repo.LeaveRequestRepository
	Teams      repo.TeamRepository
	Dispatcher *Dispatcher
	Logger     *logrus.Logger
}

func NewLeaveService(leaves repo.LeaveRequestRepository, teams repo.TeamRepository, dispatcher *Dispatcher, logger *logrus.Logger) *LeaveService {
	return &LeaveService{Leaves: leaves, Teams: teams, Dispatcher: dispatcher, Logger: logger}
}

// Create files a leave request; the requester must be a member of the team
// at creation time.
func (s *LeaveService) Create(ctx context.Context, teamID, userID, reason string) (entity.LeaveRequest, error) {
	team, err := s.Teams.GetByID(teamID)
	if err != nil || team == nil {
		return entity.LeaveRequest{}, apperr.NotFound("team not found")
	}
	if !policy.IsTeamMember(userID, team) {
		return entity.LeaveRequest{}, apperr.Validation("not a team member")
	}
	r := entity.NewLeaveRequest(teamID, userID, reason)
	if err := s.Leaves.Create(&r); err != nil {
		return entity.LeaveRequest{}, apperr.Internal("create leave request", err)
	}
	return r, nil
}

func (s *LeaveService) Approve(ctx context.Context, requestID, actorID string) (entity.LeaveRequest, error) {
	return s.resolve(ctx, requestID, actorID, entity.LeaveApproved)
}

func (s *LeaveService) Reject(ctx context.Context, requestID, actorID string) (entity.LeaveRequest, error) {
	return s.resolve(ctx, requestID, actorID, entity.LeaveRejected)
}

func (s *LeaveService) resolve(ctx context.Context, requestID, actorID string, status entity.LeaveStatus) (entity.LeaveRequest, error) {
	cur, err := s.Leaves.GetByID(requestID)
	if err != nil || cur == nil {
		return entity.LeaveRequest{}, apperr.NotFound("leave request not found")
	}
	team, err := s.Teams.GetByID(cur.TeamID)
	if err != nil || team == nil {
		return entity.LeaveRequest{}, apperr.NotFound("team not found")
	}
	if !policy.IsTeamManager(actorID, team) {
		return entity.LeaveRequest{}, apperr.Forbidden("only the team manager can resolve leave requests")
	}
	next, err := cur.Resolved(status)
	if err != nil {
		return entity.LeaveRequest{}, err
	}
	// The repository only updates rows still pending, so a concurrent
	// resolution that won the race surfaces here as a conflict.
	if err := s.Leaves.UpdateStatus(&next); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return entity.LeaveRequest{}, apperr.Conflict("request already processed")
		}
		return entity.LeaveRequest{}, apperr.Internal("update leave request", err)
	}

	kind := entity.NotifyLeaveApproved
	msg := "your leave request was approved"
	if status == entity.LeaveRejected {
		kind = entity.NotifyLeaveRejected
		msg = "your leave request was rejected"
	}
	s.Dispatcher.Dispatch(ctx, Event{
		Kind:           kind,
		RecipientID:    next.UserID,
		LeaveRequestID: next.ID,
		Message:        msg,
	})
	return next, nil
}

// ListByTeam returns a manager's view of the team's requests, filtered by
// status. The default filter is pending; "all" lifts the filter.
func (s *LeaveService) ListByTeam(ctx context.Context, teamID, actorID, filter string) ([]entity.LeaveRequest, error) {
	status, err := entity.ParseLeaveFilter(filter)
	if err != nil {
		return nil, err
	}
	team, err := s.Teams.GetByID(teamID)
	if err != nil || team == nil {
		return nil, apperr.NotFound("team not found")
	}
	if !policy.IsTeamManager(actorID, team) {
		return nil, apperr.Forbidden("only the team manager can list leave requests")
	}
	list, err := s.Leaves.ListByTeam(teamID, status)
	if err != nil {
		return nil, apperr.Internal("list leave requests", err)
	}
	return list, nil
}
