package app

import "github.com/google/uuid"

// IDGenerator produces unique poll IDs.
type IDGenerator interface {
	NewID() string
}

// PollIDGenerator generates random UUID based poll IDs.
type PollIDGenerator struct{}

func (g *PollIDGenerator) NewID() string {
	return uuid.NewString()
}
