package policy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/miftad456/task-management-sub001/internal/domain/entity"
)

var (
	team = &entity.Team{ID: "team-1", ManagerID: "carol", MemberIDs: []string{"alice", "bob"}}

	personalTask = entity.Task{ID: "t1", OwnerID: "alice"}
	teamTask     = entity.Task{ID: "t2", OwnerID: "carol", AssigneeID: "alice", TeamID: "team-1"}
)

func TestIsOwner(t *testing.T) {
	require.True(t, IsOwner("alice", personalTask))
	require.False(t, IsOwner("bob", personalTask))
	require.False(t, IsOwner("", entity.Task{}))
}

func TestIsAssignee(t *testing.T) {
	require.True(t, IsAssignee("alice", teamTask))
	require.False(t, IsAssignee("bob", teamTask))
	// unassigned task has an empty assignee; empty actor must not match
	require.False(t, IsAssignee("", personalTask))
}

func TestIsTeamManager(t *testing.T) {
	require.True(t, IsTeamManager("carol", team))
	require.False(t, IsTeamManager("alice", team))
	require.False(t, IsTeamManager("carol", nil))
}

func TestIsTeamMember(t *testing.T) {
	require.True(t, IsTeamMember("alice", team))
	require.False(t, IsTeamMember("carol", team)) // manager is not implicitly a member
	require.False(t, IsTeamMember("alice", nil))
}

func TestCanModerateTask(t *testing.T) {
	require.True(t, CanModerateTask("alice", teamTask, team))  // assignee
	require.True(t, CanModerateTask("carol", teamTask, team))  // owner and manager
	require.False(t, CanModerateTask("bob", teamTask, team))   // plain member
	require.True(t, CanModerateTask("alice", personalTask, nil))
	require.False(t, CanModerateTask("carol", personalTask, nil))
}

func TestCanViewComments(t *testing.T) {
	// personal task: owner only
	require.True(t, CanViewComments("alice", personalTask, nil))
	require.False(t, CanViewComments("bob", personalTask, nil))

	// team task: manager and members
	require.True(t, CanViewComments("carol", teamTask, team))
	require.True(t, CanViewComments("bob", teamTask, team))
	require.False(t, CanViewComments("dave", teamTask, team))
}

func TestCanEditComment(t *testing.T) {
	comment := entity.Comment{ID: "c1", AuthorID: "bob"}
	require.True(t, CanEditComment("bob", comment))
	require.False(t, CanEditComment("alice", comment))
	require.False(t, CanEditComment("", entity.Comment{}))
}
