package poll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pollbase/pollbase/server/poll"
	"github.com/pollbase/pollbase/server/utils/testutils"
)

func TestNewPoll(t *testing.T) {
	t.Run("all fine", func(t *testing.T) {
		assert := assert.New(t)

		p, err := poll.NewPoll(testutils.GetPollID(), "Color?", []string{"Red", "Blue"}, "alice")

		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(testutils.GetPollID(), p.ID)
		assert.Equal("Color?", p.Question)
		assert.Equal([]string{"Red", "Blue"}, p.Options)
		assert.Equal("alice", p.CreatedBy)
		assert.Equal(map[string]int{}, p.Votes)
		assert.NotZero(p.CreatedAt)
	})
	t.Run("fine, options are trimmed", func(t *testing.T) {
		assert := assert.New(t)

		p, err := poll.NewPoll(testutils.GetPollID(), "  Color?  ", []string{" Red ", "Blue"}, "alice")

		require.NoError(t, err)
		assert.Equal("Color?", p.Question)
		assert.Equal([]string{"Red", "Blue"}, p.Options)
	})
	t.Run("error, empty question", func(t *testing.T) {
		assert := assert.New(t)

		p, err := poll.NewPoll(testutils.GetPollID(), "   ", []string{"Red", "Blue"}, "alice")

		assert.Nil(p)
		assert.ErrorIs(err, poll.ErrValidation)
	})
	t.Run("error, too few options", func(t *testing.T) {
		assert := assert.New(t)

		p, err := poll.NewPoll(testutils.GetPollID(), "Color?", []string{"Red"}, "alice")

		assert.Nil(p)
		assert.ErrorIs(err, poll.ErrValidation)
	})
	t.Run("error, empty option", func(t *testing.T) {
		assert := assert.New(t)

		p, err := poll.NewPoll(testutils.GetPollID(), "Color?", []string{"Red", "  "}, "alice")

		assert.Nil(p)
		assert.ErrorIs(err, poll.ErrValidation)
	})
	t.Run("error, duplicate option after trimming", func(t *testing.T) {
		assert := assert.New(t)

		p, err := poll.NewPoll(testutils.GetPollID(), "Color?", []string{"Red", " Red "}, "alice")

		assert.Nil(p)
		assert.ErrorIs(err, poll.ErrValidation)
	})
}

func TestAddVote(t *testing.T) {
	t.Run("all fine", func(t *testing.T) {
		assert := assert.New(t)
		p := testutils.GetPoll()

		err := p.AddVote("alice", 0)

		require.NoError(t, err)
		assert.Equal(map[string]int{"alice": 0}, p.Votes)
	})
	t.Run("error, second vote by same user", func(t *testing.T) {
		assert := assert.New(t)
		p := testutils.GetPoll()
		require.NoError(t, p.AddVote("alice", 0))

		err := p.AddVote("alice", 1)

		assert.ErrorIs(err, poll.ErrAlreadyVoted)
		assert.Equal(map[string]int{"alice": 0}, p.Votes)
	})
	t.Run("error, negative option index", func(t *testing.T) {
		assert := assert.New(t)
		p := testutils.GetPoll()

		err := p.AddVote("alice", -1)

		assert.ErrorIs(err, poll.ErrInvalidOptionIndex)
		assert.Empty(p.Votes)
	})
	t.Run("error, option index out of range", func(t *testing.T) {
		assert := assert.New(t)
		p := testutils.GetPoll()

		err := p.AddVote("alice", len(p.Options))

		assert.ErrorIs(err, poll.ErrInvalidOptionIndex)
		assert.Empty(p.Votes)
	})
	t.Run("error, empty username", func(t *testing.T) {
		assert := assert.New(t)
		p := testutils.GetPoll()

		err := p.AddVote("", 0)

		assert.Error(err)
		assert.Empty(p.Votes)
	})
	t.Run("fine, nil vote map", func(t *testing.T) {
		assert := assert.New(t)
		p := testutils.GetPoll()
		p.Votes = nil

		err := p.AddVote("alice", 1)

		require.NoError(t, err)
		assert.Equal(map[string]int{"alice": 1}, p.Votes)
	})
}

func TestHasVoted(t *testing.T) {
	p := testutils.GetPollWithVotes(map[string]int{"alice": 0})

	assert.True(t, p.HasVoted("alice"))
	assert.False(t, p.HasVoted("bob"))
}

func TestPollCopy(t *testing.T) {
	t.Run("copy is independent", func(t *testing.T) {
		assert := assert.New(t)
		p := testutils.GetPollWithVotes(map[string]int{"alice": 0})

		p2 := p.Copy()
		require.Equal(t, p, p2)

		p2.Options[0] = "changed"
		p2.Votes["bob"] = 1

		assert.Equal("Answer 1", p.Options[0])
		assert.Equal(map[string]int{"alice": 0}, p.Votes)
	})
	t.Run("nil vote map stays nil", func(t *testing.T) {
		p := testutils.GetPoll()
		p.Votes = nil

		p2 := p.Copy()

		assert.Nil(t, p2.Votes)
	})
}

func TestEncodeDecode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		p := testutils.GetPollWithVotes(map[string]int{"alice": 2})

		p2 := poll.DecodePollFromByte(p.EncodeToByte())

		assert.Equal(t, p, p2)
	})
	t.Run("malformed data", func(t *testing.T) {
		assert.Nil(t, poll.DecodePollFromByte([]byte("{not json")))
	})
}
