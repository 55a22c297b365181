package domain

import "github.com/samber/lo"

// DefaultGroupCapacity is the maximum number of members a group accepts at join time.
const DefaultGroupCapacity = 5

// PeerGroup is a matching bucket of students sharing the same MatchingKey.
// Members keep join order and Messages keep append order.
type PeerGroup struct {
	ID         string        `json:"id"`
	University string        `json:"university"`
	Branch     string        `json:"branch"`
	Members    []string      `json:"members"`
	Messages   []ChatMessage `json:"messages"`
}

// NewGroup opens a group for the user's matching key with the user as first member.
func NewGroup(id string, founder UserProfile) PeerGroup {
	return PeerGroup{
		ID:         id,
		University: founder.University,
		Branch:     founder.Branch,
		Members:    []string{founder.ID},
		Messages:   []ChatMessage{},
	}
}

func (g PeerGroup) Key() MatchingKey {
	return MatchingKey{University: g.University, Branch: g.Branch}
}

func (g PeerGroup) HasMember(userID string) bool {
	return lo.Contains(g.Members, userID)
}

// Accepts reports whether the user may join: same matching key, room left under
// capacity, and not the excluded group.
func (g PeerGroup) Accepts(user UserProfile, capacity int, excludeGroupID string) bool {
	return g.Key() == user.Key() &&
		len(g.Members) < capacity &&
		g.ID != excludeGroupID
}

func (g *PeerGroup) Join(userID string) {
	g.Members = append(g.Members, userID)
}

// Leave removes the user from the members, keeping the order of the others.
// It returns false when the user was not a member.
func (g *PeerGroup) Leave(userID string) bool {
	if !g.HasMember(userID) {
		return false
	}
	g.Members = lo.Without(g.Members, userID)
	return true
}

func (g *PeerGroup) PostMessage(message ChatMessage) {
	g.Messages = append(g.Messages, message)
}
