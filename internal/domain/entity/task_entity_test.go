package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/miftad456/task-management-sub001/pkg/apperr"
)

func TestNewTaskDefaults(t *testing.T) {
	task, err := NewTask("write report", "quarterly numbers", nil, "owner-1")
	require.NoError(t, err)
	require.Equal(t, StatusPending, task.Status)
	require.Equal(t, PriorityMedium, task.Priority)
	require.Equal(t, StageNone, task.Stage)
	require.Zero(t, task.TimeSpent)
}

func TestNewTaskRequiresTitle(t *testing.T) {
	_, err := NewTask("", "", nil, "owner-1")
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestWithStatusTransitions(t *testing.T) {
	task, err := NewTask("x", "", nil, "owner-1")
	require.NoError(t, err)

	cases := []struct {
		name string
		from TaskStatus
		to   TaskStatus
		ok   bool
	}{
		{"pending to in-progress", StatusPending, StatusInProgress, true},
		{"pending straight to completed", StatusPending, StatusCompleted, true},
		{"in-progress back to pending", StatusInProgress, StatusPending, true},
		{"in-progress to completed", StatusInProgress, StatusCompleted, true},
		{"completed to pending", StatusCompleted, StatusPending, false},
		{"completed to in-progress", StatusCompleted, StatusInProgress, false},
		{"completed to completed", StatusCompleted, StatusCompleted, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task.Status = tc.from
			next, err := task.WithStatus(tc.to)
			if tc.ok {
				require.NoError(t, err)
				require.Equal(t, tc.to, next.Status)
			} else {
				require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			}
		})
	}
}

func TestWithStatusDoesNotMutateReceiver(t *testing.T) {
	task, err := NewTask("x", "", nil, "owner-1")
	require.NoError(t, err)
	_, err = task.WithStatus(StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, StatusPending, task.Status)
}

func TestWithLoggedTime(t *testing.T) {
	task, err := NewTask("x", "", nil, "owner-1")
	require.NoError(t, err)
	task.ID = "task-1"

	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	next, log, err := task.WithLoggedTime(30, "actor-1", at)
	require.NoError(t, err)
	require.Equal(t, 30, next.TimeSpent)
	require.Equal(t, "task-1", log.TaskID)
	require.Equal(t, "actor-1", log.ActorID)
	require.Equal(t, 30, log.Minutes)
	require.Equal(t, at, log.LoggedAt)

	next, _, err = next.WithLoggedTime(15, "actor-1", at.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, 45, next.TimeSpent)
}

func TestWithLoggedTimeRejectsNonPositive(t *testing.T) {
	task, err := NewTask("x", "", nil, "owner-1")
	require.NoError(t, err)
	for _, minutes := range []int{0, -5} {
		_, _, err := task.WithLoggedTime(minutes, "actor-1", time.Now())
		require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
}

func TestReviewSubWorkflow(t *testing.T) {
	task, err := NewTask("x", "", nil, "owner-1")
	require.NoError(t, err)

	assigned := task.Assigned("team-1", "member-1")
	require.Equal(t, StageAssigned, assigned.Stage)
	require.Equal(t, "member-1", assigned.AssigneeID)

	// submit before assignment conflicts
	_, err = task.Submitted()
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	submitted, err := assigned.Submitted()
	require.NoError(t, err)
	require.Equal(t, StageSubmitted, submitted.Stage)

	// review before submission conflicts
	_, err = assigned.Reviewed(ReviewApprove)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	approved, err := submitted.Reviewed(ReviewApprove)
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, approved.Status)
	require.Equal(t, StageNone, approved.Stage)

	rejected, err := submitted.Reviewed(ReviewReject)
	require.NoError(t, err)
	require.Equal(t, StatusInProgress, rejected.Status)
	require.Equal(t, StageAssigned, rejected.Stage)
}

func TestParseEnums(t *testing.T) {
	for _, s := range []string{"pending", "in-progress", "completed"} {
		_, err := ParseTaskStatus(s)
		require.NoError(t, err)
	}
	_, err := ParseTaskStatus("done")
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	for _, s := range []string{"low", "medium", "high"} {
		_, err := ParseTaskPriority(s)
		require.NoError(t, err)
	}
	_, err = ParseTaskPriority("urgent")
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = ParseReviewAction("approve")
	require.NoError(t, err)
	_, err = ParseReviewAction("accept")
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
