//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_store.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"fresh-connect/errors"

	"github.com/dgraph-io/badger/v4"
)

// The three records owned by the store. The names match the keys the web client
// used in its local storage so exported blobs stay interchangeable.
const (
	CurrentUserKey = "freshconnect_current_user"
	AllUsersKey    = "freshconnect_all_users"
	GroupsKey      = "freshconnect_groups"
)

// IStore is a durable key-value blob store.
type IStore interface {
	// Get returns found=false without error when the key was never written.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

type BadgerStore struct {
	db *badger.DB
}

func NewBadgerStore(db *badger.DB) IStore {
	return &BadgerStore{db: db}
}

// OpenBadger opens the database backing the store. An in-memory database
// forgets everything once closed.
func OpenBadger(path string, inMemory bool) (*badger.DB, error) {
	options := badger.DefaultOptions(path)
	if inMemory {
		options = badger.DefaultOptions("").WithInMemory(true)
	}
	return badger.Open(options.WithLoggingLevel(badger.WARNING))
}

func (s *BadgerStore) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: read %s: %w", errors.ErrStorage, key, err)
	}
	return value, true, nil
}

// Set overwrites the whole value in a single transaction.
func (s *BadgerStore) Set(key string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("%w: write %s: %w", errors.ErrStorage, key, err)
	}
	return nil
}

func (s *BadgerStore) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("%w: delete %s: %w", errors.ErrStorage, key, err)
	}
	return nil
}

// load decodes the record stored under key into out. found is false when the
// key is absent, in which case out is left untouched.
func load(store IStore, codec Codec, key string, out any) (bool, error) {
	data, found, err := store.Get(key)
	if err != nil || !found {
		return false, err
	}
	if err = codec.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("%w: decode %s: %w", errors.ErrStorage, key, err)
	}
	return true, nil
}

// save encodes the full record and writes it once.
func save(store IStore, codec Codec, key string, value any) error {
	data, err := codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", errors.ErrStorage, key, err)
	}
	return store.Set(key, data)
}
