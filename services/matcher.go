package services

import (
	"fresh-connect/domain"
	"fresh-connect/observability"
	"fresh-connect/repositories"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IGroupMatcher interface {
	FindAndJoinGroup(user domain.UserProfile, excludeGroupID string) (string, error)
}

type GroupMatcher struct {
	groups   repositories.IGroupRepository
	capacity int
	metrics  *observability.Metrics
	log      *slog.Logger
}

func NewGroupMatcher(groups repositories.IGroupRepository, capacity int, metrics *observability.Metrics, log *slog.Logger) IGroupMatcher {
	if capacity <= 0 {
		capacity = domain.DefaultGroupCapacity
	}
	return &GroupMatcher{groups: groups, capacity: capacity, metrics: metrics, log: log}
}

// FindAndJoinGroup places the user in the first group, in stored order, that shares
// their matching key, still has room and is not excludeGroupID. When none qualifies
// a new group is opened. The whole collection is written back once.
func (m *GroupMatcher) FindAndJoinGroup(user domain.UserProfile, excludeGroupID string) (string, error) {
	groups, err := m.groups.GetGroups()
	if err != nil {
		return "", err
	}

	_, idx, found := lo.FindIndexOf(groups, func(g domain.PeerGroup) bool {
		return g.Accepts(user, m.capacity, excludeGroupID)
	})

	var groupID string
	if found {
		groups[idx].Join(user.ID)
		groupID = groups[idx].ID
	} else {
		group := domain.NewGroup(newGroupID(), user)
		groups = append(groups, group)
		groupID = group.ID
	}

	if err = m.groups.SaveGroups(groups); err != nil {
		return "", err
	}
	if !found {
		m.metrics.GroupCreated()
	}
	m.log.Debug("User matched", "user", user.ID, "group", groupID, "created", !found)
	return groupID, nil
}

func newGroupID() string {
	return "group_" + uuid.NewString()
}
