// Package puzzle holds the types shared by every puzzle solver: error kinds,
// the per-record error policy, solver options and results.
package puzzle

// DefaultTopK is how many of the largest groups the calorie puzzle sums.
const DefaultTopK = 3

// DefaultChunkSize is the number of lines in a badge group.
const DefaultChunkSize = 3

// Options controls a single solver invocation.
type Options struct {
	// OnError is the per-record error policy.
	OnError Policy

	// TopK is the number of largest groups summed by top-k aggregations.
	TopK int

	// ChunkSize is the fixed group size for chunked aggregations.
	ChunkSize int
}

// DefaultOptions returns options with the documented defaults.
func DefaultOptions() Options {
	return Options{
		OnError:   DefaultPolicy,
		TopK:      DefaultTopK,
		ChunkSize: DefaultChunkSize,
	}
}

// WithDefaults fills zero fields of o from DefaultOptions.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.OnError == "" {
		o.OnError = d.OnError
	}
	if o.ChunkSize == 0 {
		o.ChunkSize = d.ChunkSize
	}
	return o
}

// Answer is one numeric result of a puzzle part.
type Answer struct {
	// Part is the 1-based puzzle part.
	Part int `json:"part"`

	// Value is the numeric answer.
	Value uint64 `json:"value"`

	// Summary is the human-readable result line, without the "Part N:" prefix.
	Summary string `json:"summary"`
}

// Stats counts what a solver consumed and dropped.
type Stats struct {
	// Lines is the number of input lines handed to the solver.
	Lines int `json:"lines"`

	// RecordsSkipped counts records dropped under PolicySkip.
	RecordsSkipped int `json:"records_skipped"`
}

// Result holds the answers of one puzzle computation.
type Result struct {
	Day     int      `json:"day"`
	Name    string   `json:"name"`
	Answers []Answer `json:"answers"`
	Stats   Stats    `json:"stats"`
}

// Answer returns the answer for the given part, or false if absent.
func (r *Result) Answer(part int) (Answer, bool) {
	for _, a := range r.Answers {
		if a.Part == part {
			return a, true
		}
	}
	return Answer{}, false
}
