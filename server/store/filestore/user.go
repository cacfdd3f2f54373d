package filestore

import (
	"github.com/pkg/errors"

	"github.com/pollbase/pollbase/server/store"
	"github.com/pollbase/pollbase/server/user"
)

// UserStore allows to access users in their data file. Users are keyed by
// username and never updated or deleted.
type UserStore struct {
	users *collection[*user.User]
}

func (s *UserStore) Get(username string) (*user.User, error) {
	return s.users.Get(username)
}

func (s *UserStore) GetAll() ([]*user.User, error) {
	return s.users.GetAll()
}

func (s *UserStore) Insert(u *user.User) error {
	return s.users.Insert(u)
}

// Exists reports whether a user with the given username is present.
func (s *UserStore) Exists(username string) (bool, error) {
	_, err := s.users.Get(username)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
