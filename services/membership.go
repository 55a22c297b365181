package services

import (
	"fresh-connect/domain"
	"fresh-connect/repositories"
	"log/slog"

	"github.com/samber/lo"
)

type IMembershipService interface {
	ChangeGroup(userID string) (string, bool, error)
	GetCurrentGroup(userID string) (domain.PeerGroup, bool, error)
}

type MembershipService struct {
	users   repositories.IUserRepository
	groups  repositories.IGroupRepository
	matcher IGroupMatcher
	log     *slog.Logger
}

func NewMembershipService(users repositories.IUserRepository, groups repositories.IGroupRepository, matcher IGroupMatcher, log *slog.Logger) IMembershipService {
	return &MembershipService{users: users, groups: groups, matcher: matcher, log: log}
}

// ChangeGroup moves the user out of their current group and re-matches them,
// never back into the group they just left. found is false for an unknown user,
// in which case nothing is written.
func (s *MembershipService) ChangeGroup(userID string) (string, bool, error) {
	users, err := s.users.GetAllUsers()
	if err != nil {
		return "", false, err
	}
	user, ok := lo.Find(users, func(u domain.UserProfile) bool { return u.ID == userID })
	if !ok {
		return "", false, nil
	}

	groups, err := s.groups.GetGroups()
	if err != nil {
		return "", false, err
	}
	// Every group holding the user is left; the first one is the group excluded below.
	var left string
	for i := range groups {
		if groups[i].Leave(userID) && left == "" {
			left = groups[i].ID
		}
	}
	// The removal is durable even if the matching below fails.
	if err = s.groups.SaveGroups(groups); err != nil {
		return "", false, err
	}

	groupID, err := s.matcher.FindAndJoinGroup(user, left)
	if err != nil {
		return "", false, err
	}
	s.log.Info("User changed group", "user", userID, "from", left, "to", groupID)
	return groupID, true, nil
}

// GetCurrentGroup returns the first group, in stored order, that lists the user.
func (s *MembershipService) GetCurrentGroup(userID string) (domain.PeerGroup, bool, error) {
	groups, err := s.groups.GetGroups()
	if err != nil {
		return domain.PeerGroup{}, false, err
	}
	group, found := lo.Find(groups, func(g domain.PeerGroup) bool { return g.HasMember(userID) })
	return group, found, nil
}
