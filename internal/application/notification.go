package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/miftad456/task-management-sub001/internal/domain/entity"
	repo "github.com/miftad456/task-management-sub001/internal/domain/repository"
	"github.com/miftad456/task-management-sub001/pkg/apperr"
	"github.com/miftad456/task-management-sub001/pkg/helpers"
	"github.com/miftad456/task-management-sub001/pkg/mailer"
)

// Event describes a completed workflow transition that should surface to a
// user as a notification.
type Event struct {
	Kind           entity.NotificationKind
	RecipientID    string
	TaskID         string
	LeaveRequestID string
	Message        string
}

// Dispatcher fans a transition event out to the notification store and,
// when RabbitMQ is configured, to the email queue. Notifications are
// best-effort: every failure here is logged and swallowed so the triggering
// workflow never sees it.
type Dispatcher struct {
	Repo   repo.NotificationRepository
	Users  repo.UserRepository
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewDispatcher(nrepo repo.NotificationRepository, users repo.UserRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{Repo: nrepo, Users: users, Pub: pub, Logger: logger}
}

func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	if d == nil {
		return
	}
	n := &entity.Notification{
		RecipientID:    ev.RecipientID,
		Kind:           ev.Kind,
		Message:        ev.Message,
		TaskID:         ev.TaskID,
		LeaveRequestID: ev.LeaveRequestID,
	}
	if err := d.Repo.Create(n); err != nil {
		d.warn(err, ev, "notification create failed")
	}

	if d.Pub == nil {
		return
	}
	u, err := d.Users.GetByID(ev.RecipientID)
	if err != nil || u == nil {
		d.warn(err, ev, "notification recipient lookup failed")
		return
	}
	job := mailer.NotificationJob{To: u.Email, Name: u.Name, Kind: string(ev.Kind), Message: ev.Message}
	if err := d.Pub.PublishJSON(ctx, job); err != nil {
		d.warn(err, ev, "notification publish failed")
	}
}

func (d *Dispatcher) warn(err error, ev Event, msg string) {
	if d.Logger == nil {
		return
	}
	d.Logger.WithError(err).WithFields(logrus.Fields{
		"kind":      ev.Kind,
		"recipient": ev.RecipientID,
	}).Warn(msg)
}

// NotificationService is the read side of notifications.
type NotificationService struct {
	Repo repo.NotificationRepository
}

func NewNotificationService(nrepo repo.NotificationRepository) *NotificationService {
	return &NotificationService{Repo: nrepo}
}

func (s *NotificationService) List(userID string) ([]entity.Notification, error) {
	list, err := s.Repo.ListByRecipient(userID)
	if err != nil {
		return nil, apperr.Internal("list notifications", err)
	}
	return list, nil
}

func (s *NotificationService) CountUnread(userID string) (int, error) {
	n, err := s.Repo.CountUnread(userID)
	if err != nil {
		return 0, apperr.Internal("count unread notifications", err)
	}
	return n, nil
}

// MarkAsRead only touches notifications addressed to userID.
func (s *NotificationService) MarkAsRead(id, userID string) error {
	if err := s.Repo.MarkAsRead(id, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return apperr.NotFound("notification not found")
		}
		return apperr.Internal("mark notification read", err)
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(userID string) error {
	if err := s.Repo.MarkAllAsRead(userID); err != nil {
		return apperr.Internal("mark notifications read", err)
	}
	return nil
}
