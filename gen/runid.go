package gen

import "github.com/google/uuid"

// RunID correlates the log lines of one generation invocation. It has no
// semantic meaning to the generator itself; it exists purely so overlapping
// concurrent GenerateOperation calls can be told apart in logs (spec §5
// permits external parallelization across operations).
type RunID string

// NewRunID returns a fresh v4 UUID-backed RunID.
func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (r RunID) String() string { return string(r) }
