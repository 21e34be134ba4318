package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/miftad456/task-management-sub001/internal/domain/entity"
	"github.com/miftad456/task-management-sub001/pkg/apperr"
)

func newTeamFixture(t *testing.T) (*TeamService, string, string) {
	t.Helper()
	users := newMemUserRepo()
	teams := newMemTeamRepo()
	svc := NewTeamService(teams, users, nil)

	carol := entity.User{Name: "Carol", Username: "carol", Email: "carol@example.com", Password: "x"}
	require.NoError(t, users.Create(&carol))
	dave := entity.User{Name: "Dave", Username: "dave", Email: "dave@example.com", Password: "x"}
	require.NoError(t, users.Create(&dave))
	return svc, carol.ID, dave.ID
}

func TestCreateTeamCreatorBecomesManager(t *testing.T) {
	svc, carol, _ := newTeamFixture(t)
	team, err := svc.Create(context.Background(), "Core", carol)
	require.NoError(t, err)
	require.Equal(t, carol, team.ManagerID)
	require.Empty(t, team.MemberIDs)
}

func TestAddMemberManagerOnly(t *testing.T) {
	svc, carol, dave := newTeamFixture(t)
	team, err := svc.Create(context.Background(), "Core", carol)
	require.NoError(t, err)

	_, err = svc.AddMember(context.Background(), team.ID, dave, dave)
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	updated, err := svc.AddMember(context.Background(), team.ID, dave, carol)
	require.NoError(t, err)
	require.True(t, updated.HasMember(dave))

	// adding twice conflicts
	_, err = svc.AddMember(context.Background(), team.ID, dave, carol)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestAddMemberUnknownUser(t *testing.T) {
	svc, carol, _ := newTeamFixture(t)
	team, err := svc.Create(context.Background(), "Core", carol)
	require.NoError(t, err)

	_, err = svc.AddMember(context.Background(), team.ID, "00000000-0000-0000-0000-000000000000", carol)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestRemoveMember(t *testing.T) {
	svc, carol, dave := newTeamFixture(t)
	team, err := svc.Create(context.Background(), "Core", carol)
	require.NoError(t, err)
	_, err = svc.AddMember(context.Background(), team.ID, dave, carol)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveMember(context.Background(), team.ID, dave, carol))

	// removing again is a not-found, the membership is gone
	err = svc.RemoveMember(context.Background(), team.ID, dave, carol)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetTeamVisibility(t *testing.T) {
	svc, carol, dave := newTeamFixture(t)
	team, err := svc.Create(context.Background(), "Core", carol)
	require.NoError(t, err)

	// non-members cannot view
	_, err = svc.Get(context.Background(), team.ID, dave)
	require.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = svc.AddMember(context.Background(), team.ID, dave, carol)
	require.NoError(t, err)
	got, err := svc.Get(context.Background(), team.ID, dave)
	require.NoError(t, err)
	require.Equal(t, team.ID, got.ID)
}
