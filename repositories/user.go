//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"fresh-connect/domain"
	"time"

	"github.com/samber/lo"
)

type IUserRepository interface {
	GetCurrentUser() (domain.UserProfile, bool, error)
	SetCurrentUser(user domain.UserProfile) error
	ClearCurrentUser() error
	GetAllUsers() ([]domain.UserProfile, error)
	SaveAllUsers(users []domain.UserProfile) error
}

type UserRepository struct {
	store IStore
	codec Codec
}

func NewUserRepository(store IStore, codec Codec) IUserRepository {
	return &UserRepository{store: store, codec: codec}
}

// DiskUser is the stored shape of a user. JoinedAt is in Unix milliseconds.
type DiskUser struct {
	ID             string `json:"id" cbor:"id"`
	Name           string `json:"name" cbor:"name"`
	University     string `json:"university" cbor:"university"`
	Branch         string `json:"branch" cbor:"branch"`
	IsNewAdmission bool   `json:"isNewAdmission" cbor:"isNewAdmission"`
	JoinedAt       int64  `json:"joinedAt" cbor:"joinedAt"`
}

func (r *UserRepository) GetCurrentUser() (domain.UserProfile, bool, error) {
	var disk DiskUser
	found, err := load(r.store, r.codec, CurrentUserKey, &disk)
	if err != nil || !found {
		return domain.UserProfile{}, false, err
	}
	return toUser(disk), true, nil
}

func (r *UserRepository) SetCurrentUser(user domain.UserProfile) error {
	return save(r.store, r.codec, CurrentUserKey, fromUser(user))
}

// ClearCurrentUser drops the session pointer only; the user stays in the users collection.
func (r *UserRepository) ClearCurrentUser() error {
	return r.store.Delete(CurrentUserKey)
}

func (r *UserRepository) GetAllUsers() ([]domain.UserProfile, error) {
	var disk []DiskUser
	if _, err := load(r.store, r.codec, AllUsersKey, &disk); err != nil {
		return nil, err
	}
	return lo.Map(disk, func(u DiskUser, _ int) domain.UserProfile { return toUser(u) }), nil
}

func (r *UserRepository) SaveAllUsers(users []domain.UserProfile) error {
	disk := lo.Map(users, func(u domain.UserProfile, _ int) DiskUser { return fromUser(u) })
	return save(r.store, r.codec, AllUsersKey, disk)
}

func fromUser(user domain.UserProfile) DiskUser {
	return DiskUser{
		ID:             user.ID,
		Name:           user.Name,
		University:     user.University,
		Branch:         user.Branch,
		IsNewAdmission: user.IsNewAdmission,
		JoinedAt:       user.JoinedAt.UnixMilli(),
	}
}

func toUser(disk DiskUser) domain.UserProfile {
	return domain.UserProfile{
		ID:             disk.ID,
		Name:           disk.Name,
		University:     disk.University,
		Branch:         disk.Branch,
		IsNewAdmission: disk.IsNewAdmission,
		JoinedAt:       time.UnixMilli(disk.JoinedAt).UTC(),
	}
}
