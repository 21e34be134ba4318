package repository

import "github.com/miftad456/task-management-sub001/internal/domain/entity"

type TaskRepository interface {
	Create(t *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	ListByUser(userID string) ([]entity.Task, error)
	Update(t *entity.Task) error
	Delete(id string) error

	// Time logs are append-only; there is deliberately no update or delete.
	AddTimeLog(l *entity.TimeLog) error
	ListTimeLogs(taskID string) ([]entity.TimeLog, error)
}

type CommentRepository interface {
	Create(c *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	ListByTask(taskID string) ([]entity.Comment, error)
	Update(c *entity.Comment) error
	Delete(id string) error
}
