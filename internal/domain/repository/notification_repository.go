package repository

import "github.com/miftad456/task-management-sub001/internal/domain/entity"

type NotificationRepository interface {
	Create(n *entity.Notification) error
	ListByRecipient(userID string) ([]entity.Notification, error)
	CountUnread(userID string) (int, error)
	MarkAsRead(id, userID string) error
	MarkAllAsRead(userID string) error
}
