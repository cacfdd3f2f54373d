package poll

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// MinOptions is the smallest number of answer options a poll may carry.
const MinOptions = 2

var (
	// ErrValidation marks a poll definition that failed field validation.
	ErrValidation = errors.New("invalid poll definition")
	// ErrAlreadyVoted is returned when a user tries to vote a second time.
	// Votes are final, changing a vote is deliberately not supported.
	ErrAlreadyVoted = errors.New("user has already voted on this poll")
	// ErrInvalidOptionIndex is returned when a vote references an option
	// index outside [0, len(Options)).
	ErrInvalidOptionIndex = errors.New("option index out of range")
)

// Poll stores all needed information for a poll
type Poll struct {
	ID        string         `json:"id"`
	Question  string         `json:"question"`
	Options   []string       `json:"options"`
	CreatedBy string         `json:"createdBy"`
	Votes     map[string]int `json:"votes"`
	CreatedAt int64          `json:"createdAt,omitempty"`
}

// NewPoll creates a new poll with the given parameter.
//
// The question and every option are trimmed. A poll needs a non-empty
// question and at least MinOptions non-empty, pairwise distinct options.
func NewPoll(id, question string, options []string, createdBy string) (*Poll, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, errors.Wrap(ErrValidation, "question must not be empty")
	}

	p := &Poll{
		ID:        id,
		Question:  question,
		CreatedBy: createdBy,
		Votes:     map[string]int{},
		CreatedAt: time.Now().UnixMilli(),
	}
	for _, option := range options {
		if err := p.addOption(option); err != nil {
			return nil, err
		}
	}
	if len(p.Options) < MinOptions {
		return nil, errors.Wrapf(ErrValidation, "a poll needs at least %d options", MinOptions)
	}
	return p, nil
}

// addOption appends a new answer option to a poll
func (p *Poll) addOption(newOption string) error {
	newOption = strings.TrimSpace(newOption)
	if newOption == "" {
		return errors.Wrap(ErrValidation, "empty option not allowed")
	}
	for _, option := range p.Options {
		if option == newOption {
			return errors.Wrapf(ErrValidation, "duplicate option: %q", newOption)
		}
	}
	p.Options = append(p.Options, newOption)
	return nil
}

// AddVote records a vote for a given user.
//
// A user votes at most once per poll and the vote can not be changed
// afterwards. The poll is only mutated when nil is returned.
func (p *Poll) AddVote(username string, optionIndex int) error {
	if username == "" {
		return errors.New("invalid username")
	}
	if _, ok := p.Votes[username]; ok {
		return errors.Wrapf(ErrAlreadyVoted, "user %q", username)
	}
	if optionIndex < 0 || optionIndex >= len(p.Options) {
		return errors.Wrapf(ErrInvalidOptionIndex, "index %d with %d options", optionIndex, len(p.Options))
	}
	if p.Votes == nil {
		p.Votes = map[string]int{}
	}
	p.Votes[username] = optionIndex
	return nil
}

// HasVoted return true if a given user has voted in this poll
func (p *Poll) HasVoted(username string) bool {
	_, ok := p.Votes[username]
	return ok
}

// RecordID returns the key the poll is stored under.
func (p *Poll) RecordID() string {
	return p.ID
}

// EncodeToByte returns a poll as a byte array
func (p *Poll) EncodeToByte() []byte {
	b, _ := json.Marshal(p)
	return b
}

// DecodePollFromByte tries to create a poll from a byte array
func DecodePollFromByte(b []byte) *Poll {
	p := Poll{}
	err := json.Unmarshal(b, &p)
	if err != nil {
		return nil
	}
	return &p
}

// Copy deep copies a poll
func (p *Poll) Copy() *Poll {
	p2 := new(Poll)
	*p2 = *p
	p2.Options = make([]string, len(p.Options))
	copy(p2.Options, p.Options)
	// Only copy Votes if it is non-nil to keep the copy exact.
	// Polls decoded from old data files might carry a nil vote map.
	if p.Votes != nil {
		p2.Votes = make(map[string]int, len(p.Votes))
		for username, optionIndex := range p.Votes {
			p2.Votes[username] = optionIndex
		}
	}
	return p2
}
