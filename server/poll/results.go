package poll

// VoteResult holds the tally for a single answer option.
type VoteResult struct {
	Option string `json:"option"`
	Votes  int    `json:"votes"`
}

// Results holds the aggregated tallies of a poll.
//
// Anomalies counts vote entries that referenced an option index outside
// the valid range. Such entries should not exist, they are skipped instead
// of failing the whole aggregation.
type Results struct {
	PollID     string        `json:"id"`
	Question   string        `json:"question"`
	CreatedBy  string        `json:"createdBy"`
	TotalVotes int           `json:"totalVotes"`
	Results    []*VoteResult `json:"results"`
	Anomalies  int           `json:"-"`
}

// Results computes the per-option tallies of a poll. It is a pure read and
// never mutates the poll.
func (p *Poll) Results() *Results {
	tally := make([]int, len(p.Options))
	total := 0
	anomalies := 0
	for _, optionIndex := range p.Votes {
		if optionIndex < 0 || optionIndex >= len(p.Options) {
			anomalies++
			continue
		}
		tally[optionIndex]++
		total++
	}

	results := make([]*VoteResult, len(p.Options))
	for i, option := range p.Options {
		results[i] = &VoteResult{Option: option, Votes: tally[i]}
	}
	return &Results{
		PollID:     p.ID,
		Question:   p.Question,
		CreatedBy:  p.CreatedBy,
		TotalVotes: total,
		Results:    results,
		Anomalies:  anomalies,
	}
}
