package app

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/pollbase/pollbase/server/store"
	"github.com/pollbase/pollbase/server/user"
)

// UserService registers users and answers existence checks.
type UserService struct {
	store  store.Store
	logger *slog.Logger
}

func NewUserService(st store.Store, logger *slog.Logger) *UserService {
	return &UserService{store: st, logger: logger}
}

// Create registers a new user. Usernames are trimmed, case-sensitive and
// must be unique.
func (s *UserService) Create(username string) (*user.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	u := user.NewUser(username)
	if err := s.store.User().Insert(u); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, errors.Wrapf(store.ErrDuplicateKey, "username %q already exists", username)
		}
		return nil, err
	}
	s.logger.Info("user registered", "username", username)
	return u, nil
}

// Get returns the user with the given username.
func (s *UserService) Get(username string) (*user.User, error) {
	return s.store.User().Get(username)
}

// Exists reports whether the given username is registered.
func (s *UserService) Exists(username string) (bool, error) {
	return s.store.User().Exists(username)
}
