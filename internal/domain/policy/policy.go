// Package policy centralizes every role check the workflows consult.
// All functions are pure predicates over transient entity copies; keeping
// them in one place keeps the rule set auditable.
package policy

import "github.com/miftad456/task-management-sub001/internal/domain/entity"

func IsOwner(actorID string, task entity.Task) bool {
	return actorID != "" && actorID == task.OwnerID
}

func IsAssignee(actorID string, task entity.Task) bool {
	return actorID != "" && actorID == task.AssigneeID
}

func IsTeamManager(actorID string, team *entity.Team) bool {
	return team != nil && actorID != "" && actorID == team.ManagerID
}

func IsTeamMember(actorID string, team *entity.Team) bool {
	return team != nil && team.HasMember(actorID)
}

// CanModerateTask gates status, priority and time-tracking updates:
// owner, assignee, or the managing team's manager.
func CanModerateTask(actorID string, task entity.Task, team *entity.Team) bool {
	return IsOwner(actorID, task) || IsAssignee(actorID, task) || IsTeamManager(actorID, team)
}

// CanViewComments follows task visibility: personal tasks are owner-only,
// team tasks open to the manager and any member.
func CanViewComments(actorID string, task entity.Task, team *entity.Team) bool {
	if task.TeamID == "" {
		return IsOwner(actorID, task)
	}
	return IsTeamManager(actorID, team) || IsTeamMember(actorID, team)
}

// CanEditComment allows only the comment's author, regardless of who owns
// the task.
func CanEditComment(actorID string, comment entity.Comment) bool {
	return actorID != "" && actorID == comment.AuthorID
}
