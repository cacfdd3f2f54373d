// Package store defines the persistence interfaces of the poll backend and
// the error taxonomy every implementation has to follow.
package store

import (
	"github.com/pollbase/pollbase/server/poll"
	"github.com/pollbase/pollbase/server/user"
)

// Store is the persistence layer of the backend. Every implementation owns
// the records it manages exclusively: records passed in and handed out are
// always independent deep copies, internal state is never aliased outward.
type Store interface {
	Poll() PollStore
	User() UserStore
	System() SystemStore
}

// PollStore allows to access polls in the store.
type PollStore interface {
	Get(id string) (*poll.Poll, error)
	GetAll() ([]*poll.Poll, error)
	GetPollsByCreator(username string) ([]*poll.Poll, error)
	GetPollsVotedBy(username string) ([]*poll.Poll, error)
	Insert(p *poll.Poll) error
	Update(p *poll.Poll) error
	// Modify applies mutate to the poll with the given id as one atomic
	// read-modify-write. No other mutation of the same poll may interleave
	// with it. When mutate returns an error the poll is left untouched.
	Modify(id string, mutate func(*poll.Poll) error) (*poll.Poll, error)
	Delete(id string) (bool, error)
}

// UserStore allows to access users in the store.
type UserStore interface {
	Get(username string) (*user.User, error)
	GetAll() ([]*user.User, error)
	Insert(u *user.User) error
	Exists(username string) (bool, error)
}

// SystemStore allows to access system information in the store.
type SystemStore interface {
	GetVersion() (string, error)
	SaveVersion(version string) error
}
