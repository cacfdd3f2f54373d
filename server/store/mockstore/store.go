// Package mockstore provides testify mocks of the store interfaces.
package mockstore

import (
	"github.com/stretchr/testify/mock"

	"github.com/pollbase/pollbase/server/poll"
	"github.com/pollbase/pollbase/server/store"
	"github.com/pollbase/pollbase/server/user"
)

// Store is a mock store
type Store struct {
	PollStore   PollStore
	UserStore   UserStore
	SystemStore SystemStore
}

// Poll returns the Poll Store
func (s *Store) Poll() store.PollStore { return &s.PollStore }

// User returns the User Store
func (s *Store) User() store.UserStore { return &s.UserStore }

// System returns the System Store
func (s *Store) System() store.SystemStore { return &s.SystemStore }

// AssertExpectations makes sure the expectations of all stores are meet
func (s *Store) AssertExpectations(t mock.TestingT) {
	s.PollStore.AssertExpectations(t)
	s.UserStore.AssertExpectations(t)
	s.SystemStore.AssertExpectations(t)
}

// PollStore is a mock poll store
type PollStore struct {
	mock.Mock
}

func (s *PollStore) Get(id string) (*poll.Poll, error) {
	ret := s.Called(id)
	var p *poll.Poll
	if ret.Get(0) != nil {
		p = ret.Get(0).(*poll.Poll)
	}
	return p, ret.Error(1)
}

func (s *PollStore) GetAll() ([]*poll.Poll, error) {
	ret := s.Called()
	var polls []*poll.Poll
	if ret.Get(0) != nil {
		polls = ret.Get(0).([]*poll.Poll)
	}
	return polls, ret.Error(1)
}

func (s *PollStore) GetPollsByCreator(username string) ([]*poll.Poll, error) {
	ret := s.Called(username)
	var polls []*poll.Poll
	if ret.Get(0) != nil {
		polls = ret.Get(0).([]*poll.Poll)
	}
	return polls, ret.Error(1)
}

func (s *PollStore) GetPollsVotedBy(username string) ([]*poll.Poll, error) {
	ret := s.Called(username)
	var polls []*poll.Poll
	if ret.Get(0) != nil {
		polls = ret.Get(0).([]*poll.Poll)
	}
	return polls, ret.Error(1)
}

func (s *PollStore) Insert(p *poll.Poll) error {
	ret := s.Called(p)
	return ret.Error(0)
}

func (s *PollStore) Update(p *poll.Poll) error {
	ret := s.Called(p)
	return ret.Error(0)
}

// Modify mimics the atomic read-modify-write of a real store: the poll
// configured as first return value is copied, mutated and returned.
func (s *PollStore) Modify(id string, mutate func(*poll.Poll) error) (*poll.Poll, error) {
	ret := s.Called(id)
	if ret.Error(1) != nil {
		return nil, ret.Error(1)
	}
	p := ret.Get(0).(*poll.Poll).Copy()
	if err := mutate(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PollStore) Delete(id string) (bool, error) {
	ret := s.Called(id)
	return ret.Bool(0), ret.Error(1)
}

// UserStore is a mock user store
type UserStore struct {
	mock.Mock
}

func (s *UserStore) Get(username string) (*user.User, error) {
	ret := s.Called(username)
	var u *user.User
	if ret.Get(0) != nil {
		u = ret.Get(0).(*user.User)
	}
	return u, ret.Error(1)
}

func (s *UserStore) GetAll() ([]*user.User, error) {
	ret := s.Called()
	var users []*user.User
	if ret.Get(0) != nil {
		users = ret.Get(0).([]*user.User)
	}
	return users, ret.Error(1)
}

func (s *UserStore) Insert(u *user.User) error {
	ret := s.Called(u)
	return ret.Error(0)
}

func (s *UserStore) Exists(username string) (bool, error) {
	ret := s.Called(username)
	return ret.Bool(0), ret.Error(1)
}

// SystemStore is a mock system store
type SystemStore struct {
	mock.Mock
}

func (s *SystemStore) GetVersion() (string, error) {
	ret := s.Called()
	return ret.String(0), ret.Error(1)
}

func (s *SystemStore) SaveVersion(version string) error {
	ret := s.Called(version)
	return ret.Error(0)
}
