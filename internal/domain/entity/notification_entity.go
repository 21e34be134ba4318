package entity

import "time"

type NotificationKind string

const (
	NotifyTaskAssigned  NotificationKind = "task_assigned"
	NotifyTaskSubmitted NotificationKind = "task_submitted"
	NotifyTaskApproved  NotificationKind = "task_approved"
	NotifyTaskRejected  NotificationKind = "task_rejected"
	NotifyLeaveApproved NotificationKind = "leave_approved"
	NotifyLeaveRejected NotificationKind = "leave_rejected"
)

// Notification is created only as a side effect of a workflow transition,
// never directly from client input.
type Notification struct {
	ID             string
	RecipientID    string
	Kind           NotificationKind
	Message        string
	TaskID         string
	LeaveRequestID string
	Read           bool
	CreatedAt      time.Time
}
