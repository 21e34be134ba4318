package entity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/miftad456/task-management-sub001/pkg/apperr"
)

func TestNewLeaveRequestStartsPending(t *testing.T) {
	r := NewLeaveRequest("team-1", "user-1", "family emergency")
	require.Equal(t, LeavePending, r.Status)
}

func TestResolvedTerminalStates(t *testing.T) {
	r := NewLeaveRequest("team-1", "user-1", "day off")

	approved, err := r.Resolved(LeaveApproved)
	require.NoError(t, err)
	require.Equal(t, LeaveApproved, approved.Status)

	rejected, err := r.Resolved(LeaveRejected)
	require.NoError(t, err)
	require.Equal(t, LeaveRejected, rejected.Status)

	// resolving an already-resolved request conflicts
	_, err = approved.Resolved(LeaveRejected)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	_, err = rejected.Resolved(LeaveApproved)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestResolvedRejectsNonTerminalTarget(t *testing.T) {
	r := NewLeaveRequest("team-1", "user-1", "day off")
	_, err := r.Resolved(LeavePending)
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestParseLeaveFilter(t *testing.T) {
	status, err := ParseLeaveFilter("")
	require.NoError(t, err)
	require.Equal(t, LeavePending, status)

	status, err = ParseLeaveFilter("all")
	require.NoError(t, err)
	require.Equal(t, LeaveStatus(""), status)

	status, err = ParseLeaveFilter("rejected")
	require.NoError(t, err)
	require.Equal(t, LeaveRejected, status)

	_, err = ParseLeaveFilter("bogus")
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUserSanitized(t *testing.T) {
	u := User{Name: "Alice", Password: "hash", RefreshToken: "token"}
	s := u.Sanitized()
	require.Empty(t, s.Password)
	require.Empty(t, s.RefreshToken)
	require.Equal(t, "hash", u.Password)
}

func TestNewUserValidation(t *testing.T) {
	_, err := NewUser("", "alice", "alice@example.com", "secret1")
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	_, err = NewUser("Alice", "alice", "alice@example.com", "12345")
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	u, err := NewUser("Alice", "alice", "alice@example.com", "123456")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
}
