package organize

import (
	"time"

	"mediasort/internal/media"
)

// Status is the terminal state of one processed entry.
type Status string

const (
	StatusMoved   Status = "moved"
	StatusPlanned Status = "planned"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome records what happened to a single discovered entry.
type Outcome struct {
	Source      string
	Destination string
	Category    media.Category
	Status      Status
	Err         error
}

// Report aggregates the per-entry outcomes of one run.
type Report struct {
	RunID    string
	DryRun   bool
	Started  time.Time
	Duration time.Duration
	Outcomes []Outcome
}

// Count returns the number of outcomes with the given status.
func (r *Report) Count(status Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// CategoryCounts returns moved/planned totals per category.
func (r *Report) CategoryCounts() map[media.Category]int {
	counts := make(map[media.Category]int)
	for _, o := range r.Outcomes {
		if o.Status == StatusMoved || o.Status == StatusPlanned {
			counts[o.Category]++
		}
	}
	return counts
}
