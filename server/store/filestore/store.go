// Package filestore implements the store interfaces on top of plain JSON
// files, one file per entity kind, fully materialized into memory.
package filestore

import (
	"log/slog"

	"github.com/pollbase/pollbase/server/poll"
	"github.com/pollbase/pollbase/server/store"
	"github.com/pollbase/pollbase/server/user"
)

type Store struct {
	logger      *slog.Logger
	pollStore   PollStore
	userStore   UserStore
	systemStore SystemStore
	upgrades    []*upgrade
}

// NewStore opens the file store in the given data directory and brings the
// stored schema up to the given version.
func NewStore(dir string, logger *slog.Logger, version string) (store.Store, error) {
	s := &Store{
		logger: logger,
		pollStore: PollStore{
			polls: newCollection[*poll.Poll](dir, "polls", logger),
		},
		userStore: UserStore{
			users: newCollection[*user.User](dir, "users", logger),
		},
		systemStore: SystemStore{
			system: newCollection[*systemRecord](dir, "system", logger),
		},
		upgrades: upgrades,
	}
	if err := s.UpdateDatabase(version); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Poll() store.PollStore     { return &s.pollStore }
func (s *Store) User() store.UserStore     { return &s.userStore }
func (s *Store) System() store.SystemStore { return &s.systemStore }
