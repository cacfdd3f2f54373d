// Package testutils provides static fixtures shared across tests.
package testutils

import (
	"github.com/pollbase/pollbase/server/poll"
	"github.com/pollbase/pollbase/server/user"
)

// GetPollID returns a static Poll ID.
func GetPollID() string {
	return "1234567890abcdefghij"
}

// GetUsername returns a static username.
func GetUsername() string {
	return "alice"
}

// GetUser returns a static User.
func GetUser() *user.User {
	return user.NewUser(GetUsername())
}

// GetPoll returns a Poll with three options and no votes.
func GetPoll() *poll.Poll {
	return &poll.Poll{
		ID:        GetPollID(),
		Question:  "Question",
		Options:   []string{"Answer 1", "Answer 2", "Answer 3"},
		CreatedBy: GetUsername(),
		Votes:     map[string]int{},
		CreatedAt: 1234567890,
	}
}

// GetPollWithVotes returns a Poll with three options and the given votes.
func GetPollWithVotes(votes map[string]int) *poll.Poll {
	p := GetPoll()
	for username, optionIndex := range votes {
		p.Votes[username] = optionIndex
	}
	return p
}
