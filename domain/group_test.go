package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewGroup_StartsWithFounder(t *testing.T) {
	req := require.New(t)
	founder := UserProfile{ID: "alice", University: "mit", Branch: "cs"}

	group := NewGroup("group_1", founder)

	req.Equal("group_1", group.ID)
	req.Equal(founder.Key(), group.Key())
	req.Equal([]string{"alice"}, group.Members)
	req.NotNil(group.Messages)
	req.Empty(group.Messages)
}

func TestPeerGroup_Accepts(t *testing.T) {
	user := UserProfile{ID: "bob", University: "mit", Branch: "cs"}
	full := PeerGroup{ID: "g1", University: "mit", Branch: "cs", Members: []string{"1", "2", "3", "4", "5"}}
	open := PeerGroup{ID: "g2", University: "mit", Branch: "cs", Members: []string{"1"}}
	otherBranch := PeerGroup{ID: "g3", University: "mit", Branch: "ee", Members: []string{}}

	require.False(t, full.Accepts(user, DefaultGroupCapacity, ""))
	require.True(t, open.Accepts(user, DefaultGroupCapacity, ""))
	require.False(t, open.Accepts(user, DefaultGroupCapacity, "g2"))
	require.False(t, otherBranch.Accepts(user, DefaultGroupCapacity, ""))
}

func TestPeerGroup_Leave_KeepsOrder(t *testing.T) {
	req := require.New(t)
	group := PeerGroup{Members: []string{"a", "b", "c", "d"}}

	req.True(group.Leave("b"))
	req.Equal([]string{"a", "c", "d"}, group.Members)

	req.False(group.Leave("unknown"))
	req.Equal([]string{"a", "c", "d"}, group.Members)

	req.True(group.Leave("a"))
	req.True(group.Leave("c"))
	req.True(group.Leave("d"))
	req.Empty(group.Members)
}

func TestPeerGroup_PostMessage_AppendsInOrder(t *testing.T) {
	req := require.New(t)
	group := NewGroup("g", UserProfile{ID: "alice"})
	at := time.Now().UTC()

	first := ChatMessage{ID: "1", SenderID: "alice", SenderName: "Alice", Text: "hello", Timestamp: at}
	second := ChatMessage{ID: "2", SenderID: "bob", SenderName: "Bob", Text: "hi", Timestamp: at.Add(time.Second)}
	group.PostMessage(first)
	group.PostMessage(second)

	req.Len(group.Messages, 2)
	req.Equal(first, group.Messages[0])
	req.Equal(second, group.Messages[1])
}
