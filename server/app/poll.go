// Package app holds the business-rule layer between the HTTP surface and
// the store. It validates input, checks that acting users exist and maps
// store faults through unchanged.
package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/pollbase/pollbase/server/event"
	"github.com/pollbase/pollbase/server/metrics"
	"github.com/pollbase/pollbase/server/poll"
	"github.com/pollbase/pollbase/server/store"
)

// PollService creates polls, records votes and computes results.
type PollService struct {
	store     store.Store
	idGen     IDGenerator
	publisher event.Publisher
	metrics   *metrics.ServiceMetrics
	logger    *slog.Logger
}

func NewPollService(st store.Store, idGen IDGenerator, publisher event.Publisher, m *metrics.ServiceMetrics, logger *slog.Logger) *PollService {
	return &PollService{
		store:     st,
		idGen:     idGen,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// Create validates the poll definition, checks that the creator exists and
// stores the poll with a fresh random ID and no votes.
func (s *PollService) Create(question string, options []string, createdBy string) (*poll.Poll, error) {
	createdBy = strings.TrimSpace(createdBy)
	if createdBy == "" {
		return nil, ErrInvalidUsername
	}
	exists, err := s.store.User().Exists(createdBy)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.Wrapf(store.ErrNotFound, "user %q", createdBy)
	}

	p, err := poll.NewPoll(s.idGen.NewID(), question, options, createdBy)
	if err != nil {
		return nil, err
	}
	if err := s.store.Poll().Insert(p); err != nil {
		return nil, err
	}
	s.metrics.PollsCreated.Inc()
	s.logger.Info("poll created", "poll_id", p.ID, "created_by", createdBy)
	return p, nil
}

// Get returns the poll with the given ID.
func (s *PollService) Get(id string) (*poll.Poll, error) {
	return s.store.Poll().Get(id)
}

// GetAll returns every stored poll.
func (s *PollService) GetAll() ([]*poll.Poll, error) {
	return s.store.Poll().GetAll()
}

// GetByCreator returns every poll created by the given user.
func (s *PollService) GetByCreator(username string) ([]*poll.Poll, error) {
	return s.store.Poll().GetPollsByCreator(username)
}

// GetVotedBy returns every poll the given user has voted on.
func (s *PollService) GetVotedBy(username string) ([]*poll.Poll, error) {
	return s.store.Poll().GetPollsVotedBy(username)
}

// Vote records a single vote. The read-check-write against the poll runs as
// one atomic modification in the store, so concurrent votes by distinct
// users can not overwrite each other.
func (s *PollService) Vote(ctx context.Context, pollID, username string, optionIndex int) (*poll.Poll, error) {
	start := time.Now()

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	exists, err := s.store.User().Exists(username)
	if err != nil {
		return nil, err
	}
	if !exists {
		s.metrics.VotesRejected.WithLabelValues("unknown_user").Inc()
		return nil, errors.Wrapf(store.ErrNotFound, "user %q", username)
	}

	p, err := s.store.Poll().Modify(pollID, func(p *poll.Poll) error {
		return p.AddVote(username, optionIndex)
	})
	if err != nil {
		s.metrics.VotesRejected.WithLabelValues(rejectionReason(err)).Inc()
		return nil, err
	}

	s.metrics.VotesRecorded.WithLabelValues(pollID).Inc()
	s.metrics.VoteDuration.Observe(time.Since(start).Seconds())

	vote := event.Vote{
		PollID:      pollID,
		Username:    username,
		OptionIndex: optionIndex,
		VotedAt:     time.Now().UTC(),
	}
	if err := s.publisher.PublishVote(ctx, vote); err != nil {
		// The vote is already durably committed, a failed publish only
		// costs downstream consumers the event.
		s.logger.Warn("failed to publish vote event", "poll_id", pollID, "error", err)
	}
	return p, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, poll.ErrAlreadyVoted):
		return "duplicate_vote"
	case errors.Is(err, poll.ErrInvalidOptionIndex):
		return "invalid_option"
	case errors.Is(err, store.ErrNotFound):
		return "unknown_poll"
	default:
		return "error"
	}
}

// Results computes the current tallies of a poll.
func (s *PollService) Results(pollID string) (*poll.Results, error) {
	p, err := s.store.Poll().Get(pollID)
	if err != nil {
		return nil, err
	}
	results := p.Results()
	if results.Anomalies > 0 {
		s.logger.Warn("skipped out-of-range vote entries during aggregation",
			"poll_id", pollID, "anomalies", results.Anomalies)
	}
	return results, nil
}

// Delete removes a poll. Only the creator of a poll is allowed to delete it.
func (s *PollService) Delete(pollID, requester string) error {
	p, err := s.store.Poll().Get(pollID)
	if err != nil {
		return err
	}
	if p.CreatedBy != requester {
		return errors.Wrapf(ErrNotAuthorized, "only the creator may delete poll %q", pollID)
	}
	if _, err := s.store.Poll().Delete(pollID); err != nil {
		return err
	}
	s.logger.Info("poll deleted", "poll_id", pollID, "deleted_by", requester)
	return nil
}
