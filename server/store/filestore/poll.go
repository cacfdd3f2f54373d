package filestore

import (
	"github.com/pollbase/pollbase/server/poll"
)

// PollStore allows to access polls in their data file.
type PollStore struct {
	polls *collection[*poll.Poll]
}

func (s *PollStore) Get(id string) (*poll.Poll, error) {
	return s.polls.Get(id)
}

func (s *PollStore) GetAll() ([]*poll.Poll, error) {
	return s.polls.GetAll()
}

// GetPollsByCreator returns every poll created by the given user.
func (s *PollStore) GetPollsByCreator(username string) ([]*poll.Poll, error) {
	return s.polls.Filter(func(p *poll.Poll) (bool, error) {
		return p.CreatedBy == username, nil
	})
}

// GetPollsVotedBy returns every poll the given user has voted on.
func (s *PollStore) GetPollsVotedBy(username string) ([]*poll.Poll, error) {
	return s.polls.Filter(func(p *poll.Poll) (bool, error) {
		return p.HasVoted(username), nil
	})
}

func (s *PollStore) Insert(p *poll.Poll) error {
	return s.polls.Insert(p)
}

func (s *PollStore) Update(p *poll.Poll) error {
	return s.polls.Update(p)
}

func (s *PollStore) Modify(id string, mutate func(*poll.Poll) error) (*poll.Poll, error) {
	return s.polls.Modify(id, mutate)
}

func (s *PollStore) Delete(id string) (bool, error) {
	return s.polls.Delete(id)
}
