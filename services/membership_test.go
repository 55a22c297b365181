package services

import (
	stderrors "errors"
	"fresh-connect/domain"
	"fresh-connect/mocks"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMembershipService_ChangeGroup_Scenario(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.register(t, "Alice", "MIT", "CS")
	bob := f.register(t, "Bob", "MIT", "CS")
	original := f.groupOf(t, alice.ID)

	newGroupID, found, err := f.membership.ChangeGroup(alice.ID)

	req.NoError(err)
	req.True(found)
	req.NotEqual(original.ID, newGroupID)

	groups := f.allGroups(t)
	req.Len(groups, 2)
	req.Equal(original.ID, groups[0].ID)
	req.Equal([]string{bob.ID}, groups[0].Members)
	req.Equal(newGroupID, groups[1].ID)
	req.Equal([]string{alice.ID}, groups[1].Members)
	req.Equal(newGroupID, f.groupOf(t, alice.ID).ID)
}

func TestMembershipService_ChangeGroup_Never_Returns_Left_Group(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.register(t, "Alice", "MIT", "CS")
	left := f.groupOf(t, alice.ID)

	// The left group is empty afterwards, yet it is never offered back
	for range 3 {
		current := f.groupOf(t, alice.ID)
		groupID, found, err := f.membership.ChangeGroup(alice.ID)
		req.NoError(err)
		req.True(found)
		req.NotEqual(current.ID, groupID)
	}

	groups := f.allGroups(t)
	req.Equal(left.ID, groups[0].ID)
	for _, g := range groups {
		req.LessOrEqual(len(g.Members), 1)
	}
}

func TestMembershipService_ChangeGroup_Joins_Alternate_Group(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.register(t, "Alice", "MIT", "CS")
	req.NoError(f.groups.SaveGroups(append(f.allGroups(t), domain.PeerGroup{
		ID: "group_alt", University: "mit", Branch: "cs", Members: []string{"someone"}, Messages: []domain.ChatMessage{},
	})))

	groupID, found, err := f.membership.ChangeGroup(alice.ID)

	req.NoError(err)
	req.True(found)
	req.Equal("group_alt", groupID)
	req.Equal([]string{"someone", alice.ID}, f.groupOf(t, alice.ID).Members)
	req.Len(f.allGroups(t), 2)
}

func TestMembershipService_ChangeGroup_Unknown_User(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.register(t, "Alice", "MIT", "CS")
	before := f.allGroups(t)

	groupID, found, err := f.membership.ChangeGroup("ghost")

	req.NoError(err)
	req.False(found)
	req.Empty(groupID)
	req.Equal(before, f.allGroups(t))
}

func TestMembershipService_ChangeGroup_Removal_Is_Durable_When_Matching_Fails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFixture(t)
	users := mocks.NewMockIUserRepository(ctrl)
	groups := mocks.NewMockIGroupRepository(ctrl)
	svc := NewMembershipService(users, groups, NewGroupMatcher(groups, domain.DefaultGroupCapacity, nil, f.log), f.log)
	alice := student("alice", "mit", "cs")
	boom := stderrors.New("disk full")

	users.EXPECT().GetAllUsers().Return([]domain.UserProfile{alice}, nil)
	gomock.InOrder(
		groups.EXPECT().GetGroups().Return([]domain.PeerGroup{
			{ID: "group_a", University: "mit", Branch: "cs", Members: []string{"bob", "alice"}, Messages: []domain.ChatMessage{}},
		}, nil),
		groups.EXPECT().SaveGroups([]domain.PeerGroup{
			{ID: "group_a", University: "mit", Branch: "cs", Members: []string{"bob"}, Messages: []domain.ChatMessage{}},
		}).Return(nil),
		groups.EXPECT().GetGroups().Return(nil, boom),
	)

	_, _, err := svc.ChangeGroup(alice.ID)

	req.ErrorIs(err, boom)
}

func TestMembershipService_GetCurrentGroup(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	alice := f.register(t, "Alice", "MIT", "CS")

	group, found, err := f.membership.GetCurrentGroup(alice.ID)
	req.NoError(err)
	req.True(found)
	req.Contains(group.Members, alice.ID)

	_, found, err = f.membership.GetCurrentGroup("ghost")
	req.NoError(err)
	req.False(found)
}
