package services

import (
	"context"
	"fresh-connect/domain"
	"fresh-connect/errors"
	"fresh-connect/moderation"
	"fresh-connect/observability"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"
)

// ListingSource feeds the housing guide.
type ListingSource interface {
	Hostels(ctx context.Context, institution string) []domain.Hostel
	Ads(institution string) []domain.Advertisement
}

// Hub exposes the operations the client calls. Store-touching operations run one
// at a time, so each read-modify-write of a collection sees the previous one.
type Hub struct {
	mu               sync.Mutex
	session          ISessionService
	membership       IMembershipService
	messaging        IMessagingService
	listings         ListingSource
	moderator        *moderation.Moderator
	maxContentLength int
	metrics          *observability.Metrics
	log              *slog.Logger
}

type HubConfig struct {
	Session          ISessionService
	Membership       IMembershipService
	Messaging        IMessagingService
	Listings         ListingSource
	Moderator        *moderation.Moderator
	MaxContentLength int
	Metrics          *observability.Metrics
	Log              *slog.Logger
}

func NewHub(config HubConfig) *Hub {
	return &Hub{
		session:          config.Session,
		membership:       config.Membership,
		messaging:        config.Messaging,
		listings:         config.Listings,
		moderator:        config.Moderator,
		maxContentLength: config.MaxContentLength,
		metrics:          config.Metrics,
		log:              config.Log,
	}
}

// Register validates the form, records the student, opens their session and
// places them in a group, all before another operation can observe the store.
func (h *Hub) Register(registration domain.Registration) (domain.UserProfile, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	user, err := h.session.RegisterUser(registration)
	if err != nil {
		return domain.UserProfile{}, err
	}
	h.metrics.Registered()
	return user, nil
}

func (h *Hub) CurrentUser() (domain.UserProfile, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.session.GetCurrentUser()
}

func (h *Hub) Logout() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.session.Logout()
}

func (h *Hub) CurrentGroup(userID string) (domain.PeerGroup, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.membership.GetCurrentGroup(userID)
}

func (h *Hub) ChangeGroup(userID string) (string, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	groupID, found, err := h.membership.ChangeGroup(userID)
	if err != nil || !found {
		return "", found, err
	}
	h.metrics.GroupSwitched()
	return groupID, true, nil
}

// SendMessage trims the text, enforces the length bound and masks banned words
// before appending. found is false when the group does not exist.
func (h *Hub) SendMessage(groupID string, message domain.OutgoingMessage) (domain.ChatMessage, bool, error) {
	text := strings.TrimSpace(message.Text)
	if text == "" {
		return domain.ChatMessage{}, false, errors.ErrEmptyMessage
	}
	if h.maxContentLength > 0 && utf8.RuneCountInString(text) > h.maxContentLength {
		return domain.ChatMessage{}, false, errors.ErrMessageTooLong
	}
	text, words := h.moderator.Censor(text)
	message.Text = text

	h.mu.Lock()
	defer h.mu.Unlock()

	sent, found, err := h.messaging.SendMessage(groupID, message)
	if err != nil || !found {
		return domain.ChatMessage{}, found, err
	}
	h.metrics.MessageSent(len(words) > 0)
	return sent, true, nil
}

// Listings does not take the store lock: it never touches the store.
func (h *Hub) Listings(ctx context.Context, institution string) domain.Listings {
	return domain.Listings{
		Ads:     h.listings.Ads(institution),
		Hostels: h.listings.Hostels(ctx, institution),
	}
}
