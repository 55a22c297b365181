package services

import (
	"fresh-connect/domain"
	"fresh-connect/repositories"
	"fresh-connect/validation"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ISessionService interface {
	RegisterUser(registration domain.Registration) (domain.UserProfile, error)
	GetCurrentUser() (domain.UserProfile, bool, error)
	Logout() error
}

type SessionService struct {
	users   repositories.IUserRepository
	matcher IGroupMatcher
	now     func() time.Time
	log     *slog.Logger
}

func NewSessionService(users repositories.IUserRepository, matcher IGroupMatcher, log *slog.Logger) ISessionService {
	return &SessionService{users: users, matcher: matcher, now: time.Now, log: log}
}

func (s *SessionService) RegisterUser(registration domain.Registration) (domain.UserProfile, error) {
	// 1. Validate before touching the store, so a rejected form leaves no trace
	if err := validation.ValidateRegistration(registration); err != nil {
		return domain.UserProfile{}, err
	}

	// 2. Build the profile with its matching key normalized
	user := domain.UserProfile{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(registration.Name),
		University:     domain.Normalize(registration.University),
		Branch:         domain.Normalize(registration.Branch),
		IsNewAdmission: registration.IsNewAdmission,
		JoinedAt:       s.now().UTC().Truncate(time.Millisecond),
	}

	// 3. Open the session and record the user
	if err := s.users.SetCurrentUser(user); err != nil {
		return domain.UserProfile{}, err
	}
	users, err := s.users.GetAllUsers()
	if err != nil {
		return domain.UserProfile{}, err
	}
	if err = s.users.SaveAllUsers(append(users, user)); err != nil {
		return domain.UserProfile{}, err
	}

	// 4. Every registration ends in a group
	groupID, err := s.matcher.FindAndJoinGroup(user, "")
	if err != nil {
		return domain.UserProfile{}, err
	}

	s.log.Info("User registered", "user", user.ID, "university", user.University, "branch", user.Branch, "group", groupID)
	return user, nil
}

func (s *SessionService) GetCurrentUser() (domain.UserProfile, bool, error) {
	return s.users.GetCurrentUser()
}

// Logout clears the session pointer. The user keeps their record and group.
func (s *SessionService) Logout() error {
	return s.users.ClearCurrentUser()
}
