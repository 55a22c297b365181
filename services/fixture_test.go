package services

import (
	"fresh-connect/domain"
	"fresh-connect/repositories"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store      repositories.IStore
	users      repositories.IUserRepository
	groups     repositories.IGroupRepository
	matcher    IGroupMatcher
	membership IMembershipService
	messaging  IMessagingService
	session    ISessionService
	log        *slog.Logger
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := repositories.OpenBadger("", true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	store := repositories.NewBadgerStore(db)
	users := repositories.NewUserRepository(store, repositories.JSONCodec{})
	groups := repositories.NewGroupRepository(store, repositories.JSONCodec{})
	matcher := NewGroupMatcher(groups, domain.DefaultGroupCapacity, nil, log)
	return fixture{
		store:      store,
		users:      users,
		groups:     groups,
		matcher:    matcher,
		membership: NewMembershipService(users, groups, matcher, log),
		messaging:  NewMessagingService(groups, log),
		session:    NewSessionService(users, matcher, log),
		log:        log,
	}
}

func (f fixture) register(t *testing.T, name, university, branch string) domain.UserProfile {
	t.Helper()
	user, err := f.session.RegisterUser(domain.Registration{
		Name:           name,
		University:     university,
		Branch:         branch,
		IsNewAdmission: true,
	})
	require.NoError(t, err)
	return user
}

func (f fixture) allGroups(t *testing.T) []domain.PeerGroup {
	t.Helper()
	groups, err := f.groups.GetGroups()
	require.NoError(t, err)
	return groups
}

func (f fixture) groupOf(t *testing.T, userID string) domain.PeerGroup {
	t.Helper()
	group, found, err := f.membership.GetCurrentGroup(userID)
	require.NoError(t, err)
	require.True(t, found, "user %s has no group", userID)
	return group
}
