// Package event publishes recorded votes to downstream consumers.
package event

import (
	"context"
	"time"
)

// Vote is the payload published for every recorded vote.
type Vote struct {
	PollID      string    `json:"poll_id"`
	Username    string    `json:"username"`
	OptionIndex int       `json:"option_index"`
	VotedAt     time.Time `json:"voted_at"`
}

// Publisher hands recorded votes to an external system. Publishing is
// advisory: the vote is already durably committed when it is published.
type Publisher interface {
	PublishVote(ctx context.Context, vote Vote) error
	Close() error
}

// Discard is a Publisher that drops every vote. It is used when no broker
// is configured.
type Discard struct{}

func (Discard) PublishVote(context.Context, Vote) error { return nil }

func (Discard) Close() error { return nil }
