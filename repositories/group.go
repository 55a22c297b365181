//go:generate go run go.uber.org/mock/mockgen -source=group.go -destination=../mocks/mock_group_repository.go -package=mocks
package repositories

import (
	"fresh-connect/domain"
	"time"

	"github.com/samber/lo"
)

type IGroupRepository interface {
	GetGroups() ([]domain.PeerGroup, error)
	SaveGroups(groups []domain.PeerGroup) error
}

type GroupRepository struct {
	store IStore
	codec Codec
}

func NewGroupRepository(store IStore, codec Codec) IGroupRepository {
	return &GroupRepository{store: store, codec: codec}
}

type DiskGroup struct {
	ID         string        `json:"id" cbor:"id"`
	University string        `json:"university" cbor:"university"`
	Branch     string        `json:"branch" cbor:"branch"`
	Members    []string      `json:"members" cbor:"members"`
	Messages   []DiskMessage `json:"messages" cbor:"messages"`
}

// DiskMessage is the stored shape of a chat line. Timestamp is in Unix milliseconds.
type DiskMessage struct {
	ID         string `json:"id" cbor:"id"`
	SenderID   string `json:"senderId" cbor:"senderId"`
	SenderName string `json:"senderName" cbor:"senderName"`
	Text       string `json:"text" cbor:"text"`
	Timestamp  int64  `json:"timestamp" cbor:"timestamp"`
}

// GetGroups returns every group in stored order. Matching relies on that order.
func (r *GroupRepository) GetGroups() ([]domain.PeerGroup, error) {
	var disk []DiskGroup
	if _, err := load(r.store, r.codec, GroupsKey, &disk); err != nil {
		return nil, err
	}
	return lo.Map(disk, func(g DiskGroup, _ int) domain.PeerGroup { return toGroup(g) }), nil
}

// SaveGroups overwrites the whole collection.
func (r *GroupRepository) SaveGroups(groups []domain.PeerGroup) error {
	disk := lo.Map(groups, func(g domain.PeerGroup, _ int) DiskGroup { return fromGroup(g) })
	return save(r.store, r.codec, GroupsKey, disk)
}

func fromGroup(group domain.PeerGroup) DiskGroup {
	members := make([]string, len(group.Members))
	copy(members, group.Members)
	return DiskGroup{
		ID:         group.ID,
		University: group.University,
		Branch:     group.Branch,
		Members:    members,
		Messages:   lo.Map(group.Messages, func(m domain.ChatMessage, _ int) DiskMessage { return fromMessage(m) }),
	}
}

func toGroup(disk DiskGroup) domain.PeerGroup {
	members := make([]string, len(disk.Members))
	copy(members, disk.Members)
	messages := make([]domain.ChatMessage, 0, len(disk.Messages))
	for _, m := range disk.Messages {
		messages = append(messages, toMessage(m))
	}
	return domain.PeerGroup{
		ID:         disk.ID,
		University: disk.University,
		Branch:     disk.Branch,
		Members:    members,
		Messages:   messages,
	}
}

func fromMessage(message domain.ChatMessage) DiskMessage {
	return DiskMessage{
		ID:         message.ID,
		SenderID:   message.SenderID,
		SenderName: message.SenderName,
		Text:       message.Text,
		Timestamp:  message.Timestamp.UnixMilli(),
	}
}

func toMessage(disk DiskMessage) domain.ChatMessage {
	return domain.ChatMessage{
		ID:         disk.ID,
		SenderID:   disk.SenderID,
		SenderName: disk.SenderName,
		Text:       disk.Text,
		Timestamp:  time.UnixMilli(disk.Timestamp).UTC(),
	}
}
