package poll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pollbase/pollbase/server/poll"
	"github.com/pollbase/pollbase/server/utils/testutils"
)

func TestResults(t *testing.T) {
	t.Run("tallies in option order", func(t *testing.T) {
		assert := assert.New(t)
		p := &poll.Poll{
			ID:        testutils.GetPollID(),
			Question:  "Color?",
			Options:   []string{"Red", "Blue"},
			CreatedBy: "alice",
			Votes:     map[string]int{"alice": 0, "bob": 1, "carol": 0},
		}

		results := p.Results()

		assert.Equal(testutils.GetPollID(), results.PollID)
		assert.Equal("Color?", results.Question)
		assert.Equal("alice", results.CreatedBy)
		assert.Equal(3, results.TotalVotes)
		assert.Equal([]*poll.VoteResult{
			{Option: "Red", Votes: 2},
			{Option: "Blue", Votes: 1},
		}, results.Results)
		assert.Zero(results.Anomalies)
	})
	t.Run("no votes", func(t *testing.T) {
		assert := assert.New(t)
		p := testutils.GetPoll()

		results := p.Results()

		assert.Zero(results.TotalVotes)
		assert.Equal([]*poll.VoteResult{
			{Option: "Answer 1", Votes: 0},
			{Option: "Answer 2", Votes: 0},
			{Option: "Answer 3", Votes: 0},
		}, results.Results)
	})
	t.Run("out-of-range entries are skipped, not counted", func(t *testing.T) {
		assert := assert.New(t)
		p := testutils.GetPollWithVotes(map[string]int{"alice": 0, "bob": 7, "carol": -2})

		results := p.Results()

		assert.Equal(1, results.TotalVotes)
		assert.Equal(2, results.Anomalies)
		assert.Equal(1, results.Results[0].Votes)
	})
	t.Run("does not mutate the poll", func(t *testing.T) {
		p := testutils.GetPollWithVotes(map[string]int{"alice": 1})
		before := p.Copy()

		_ = p.Results()

		assert.Equal(t, before, p)
	})
}
