package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/miftad456/task-management-sub001/internal/domain/entity"
	"github.com/miftad456/task-management-sub001/pkg/apperr"
)

type failingNotificationRepo struct {
	memNotificationRepo
}

func (r *failingNotificationRepo) Create(n *entity.Notification) error {
	return errors.New("store down")
}

func TestDispatchPersistsNotification(t *testing.T) {
	users := newMemUserRepo()
	store := newMemNotificationRepo()
	d := NewDispatcher(store, users, nil, nil)

	u := entity.User{Name: "Alice", Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, users.Create(&u))

	d.Dispatch(context.Background(), Event{
		Kind:        entity.NotifyTaskAssigned,
		RecipientID: u.ID,
		TaskID:      "t1",
		Message:     "you have been assigned a task",
	})

	list, err := store.ListByRecipient(u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, entity.NotifyTaskAssigned, list[0].Kind)
	require.False(t, list[0].Read)
}

func TestDispatchSwallowsStoreFailure(t *testing.T) {
	d := NewDispatcher(&failingNotificationRepo{}, newMemUserRepo(), nil, nil)
	require.NotPanics(t, func() {
		d.Dispatch(context.Background(), Event{Kind: entity.NotifyTaskAssigned, RecipientID: "u1"})
	})
}

func TestNilDispatcherIsSafe(t *testing.T) {
	var d *Dispatcher
	require.NotPanics(t, func() {
		d.Dispatch(context.Background(), Event{Kind: entity.NotifyTaskAssigned, RecipientID: "u1"})
	})
}

func TestMarkAsReadScopedToRecipient(t *testing.T) {
	store := newMemNotificationRepo()
	svc := NewNotificationService(store)

	n := entity.Notification{RecipientID: "u1", Kind: entity.NotifyTaskAssigned, Message: "m"}
	require.NoError(t, store.Create(&n))

	// someone else's id does not match
	err := svc.MarkAsRead(n.ID, "u2")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	require.NoError(t, svc.MarkAsRead(n.ID, "u1"))

	unread, err := svc.CountUnread("u1")
	require.NoError(t, err)
	require.Zero(t, unread)
}

func TestMarkAllAsRead(t *testing.T) {
	store := newMemNotificationRepo()
	svc := NewNotificationService(store)

	for i := 0; i < 3; i++ {
		n := entity.Notification{RecipientID: "u1", Kind: entity.NotifyTaskAssigned, Message: "m"}
		require.NoError(t, store.Create(&n))
	}
	other := entity.Notification{RecipientID: "u2", Kind: entity.NotifyTaskAssigned, Message: "m"}
	require.NoError(t, store.Create(&other))

	require.NoError(t, svc.MarkAllAsRead("u1"))

	unread, err := svc.CountUnread("u1")
	require.NoError(t, err)
	require.Zero(t, unread)

	otherUnread, err := svc.CountUnread("u2")
	require.NoError(t, err)
	require.Equal(t, 1, otherUnread)
}
