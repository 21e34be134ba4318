package entity

import (
	"time"

	"github.com/miftad456/task-management-sub001/pkg/apperr"
)

// Comment belongs to a task. Visibility follows the task; mutation is
// restricted to the author.
type Comment struct {
	ID        string
	TaskID    string
	AuthorID  string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewComment(taskID, authorID, body string) (Comment, error) {
	if body == "" {
		return Comment{}, apperr.Validation("comment body is required")
	}
	return Comment{TaskID: taskID, AuthorID: authorID, Body: body}, nil
}
