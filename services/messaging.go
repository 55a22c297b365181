package services

import (
	"fresh-connect/domain"
	"fresh-connect/repositories"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IMessagingService interface {
	SendMessage(groupID string, message domain.OutgoingMessage) (domain.ChatMessage, bool, error)
}

type MessagingService struct {
	groups repositories.IGroupRepository
	now    func() time.Time
	log    *slog.Logger
}

func NewMessagingService(groups repositories.IGroupRepository, log *slog.Logger) IMessagingService {
	return &MessagingService{groups: groups, now: time.Now, log: log}
}

// SendMessage appends the message to the group log. An unknown group is a silent
// no-op: nothing is written and found is false.
// The text is stored as given; callers ensure it is non-empty once trimmed.
func (s *MessagingService) SendMessage(groupID string, message domain.OutgoingMessage) (domain.ChatMessage, bool, error) {
	groups, err := s.groups.GetGroups()
	if err != nil {
		return domain.ChatMessage{}, false, err
	}
	_, idx, found := lo.FindIndexOf(groups, func(g domain.PeerGroup) bool { return g.ID == groupID })
	if !found {
		s.log.Debug("Message dropped, unknown group", "group", groupID)
		return domain.ChatMessage{}, false, nil
	}

	chatMessage := domain.ChatMessage{
		ID:         uuid.NewString(),
		SenderID:   message.SenderID,
		SenderName: message.SenderName,
		Text:       message.Text,
		Timestamp:  s.now().UTC().Truncate(time.Millisecond),
	}
	groups[idx].PostMessage(chatMessage)

	if err = s.groups.SaveGroups(groups); err != nil {
		return domain.ChatMessage{}, false, err
	}
	return chatMessage, true, nil
}
