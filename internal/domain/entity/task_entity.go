package entity

import (
	"time"

	"github.com/miftad456/task-management-sub001/pkg/apperr"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// ReviewStage tracks the assignment sub-workflow. Empty means the task is
// not part of a managed assignment.
type ReviewStage string

const (
	StageNone      ReviewStage = ""
	StageAssigned  ReviewStage = "assigned"
	StageSubmitted ReviewStage = "submitted"
)

type ReviewAction string

const (
	ReviewApprove ReviewAction = "approve"
	ReviewReject  ReviewAction = "reject"
)

func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return TaskStatus(s), nil
	}
	return "", apperr.Validationf("invalid status %q", s)
}

func ParseTaskPriority(s string) (TaskPriority, error) {
	switch TaskPriority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return TaskPriority(s), nil
	}
	return "", apperr.Validationf("invalid priority %q", s)
}

func ParseReviewAction(s string) (ReviewAction, error) {
	switch ReviewAction(s) {
	case ReviewApprove, ReviewReject:
		return ReviewAction(s), nil
	}
	return "", apperr.Validationf("invalid review action %q", s)
}

// Task is the aggregate root for the work-item domain. Transitions are pure:
// each returns a new value instead of mutating the receiver, so concurrent
// callers never share a mutable task.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    TaskPriority
	Status      TaskStatus
	Stage       ReviewStage
	Deadline    *time.Time
	TimeSpent   int // accumulated minutes
	OwnerID     string
	AssigneeID  string
	TeamID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TimeLog is an append-only record of minutes logged against a task.
// Entries are never edited or deleted.
type TimeLog struct {
	ID       string
	TaskID   string
	ActorID  string
	Minutes  int
	LoggedAt time.Time
}

// NewTask validates creation input and applies defaults:
// priority medium, status pending, zero time spent.
func NewTask(title, description string, deadline *time.Time, ownerID string) (Task, error) {
	if title == "" {
		return Task{}, apperr.Validation("title is required")
	}
	return Task{
		Title:       title,
		Description: description,
		Priority:    PriorityMedium,
		Status:      StatusPending,
		Deadline:    deadline,
		OwnerID:     ownerID,
	}, nil
}

// WithStatus returns a copy in the new status. Completed is terminal for
// status; every other move between the three states is allowed.
func (t Task) WithStatus(s TaskStatus) (Task, error) {
	if t.Status == StatusCompleted && s != StatusCompleted {
		return Task{}, apperr.Validation("completed task status is final")
	}
	t.Status = s
	return t, nil
}

// WithPriority returns a copy with the new priority. Priority stays mutable
// after completion for historical correction.
func (t Task) WithPriority(p TaskPriority) (Task, error) {
	t.Priority = p
	return t, nil
}

// WithLoggedTime accumulates minutes into TimeSpent and returns the matching
// append-only log entry. TimeSpent never decreases via this path.
func (t Task) WithLoggedTime(minutes int, actorID string, at time.Time) (Task, TimeLog, error) {
	if minutes <= 0 {
		return Task{}, TimeLog{}, apperr.Validation("minutes must be a positive number")
	}
	t.TimeSpent += minutes
	log := TimeLog{TaskID: t.ID, ActorID: actorID, Minutes: minutes, LoggedAt: at}
	return t, log, nil
}

// Assigned returns a copy bound to a team member, entering the review
// sub-workflow at the assigned stage.
func (t Task) Assigned(teamID, assigneeID string) Task {
	t.TeamID = teamID
	t.AssigneeID = assigneeID
	t.Stage = StageAssigned
	return t
}

// Submitted moves an assigned task to the submitted stage.
func (t Task) Submitted() (Task, error) {
	if t.Stage != StageAssigned {
		return Task{}, apperr.Conflict("task is not open for submission")
	}
	t.Stage = StageSubmitted
	return t, nil
}

// Reviewed resolves a submitted task. Approval completes it; rejection
// returns it to in-progress at the assigned stage so the assignee can retry.
func (t Task) Reviewed(action ReviewAction) (Task, error) {
	if t.Stage != StageSubmitted {
		return Task{}, apperr.Conflict("task has not been submitted for review")
	}
	switch action {
	case ReviewApprove:
		t.Status = StatusCompleted
		t.Stage = StageNone
	case ReviewReject:
		t.Status = StatusInProgress
		t.Stage = StageAssigned
	default:
		return Task{}, apperr.Validationf("invalid review action %q", string(action))
	}
	return t, nil
}
