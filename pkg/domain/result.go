package domain

import "time"

// Status is the final outcome of a bounded simulation run.
type Status string

const (
	// StatusAccepted means some branch reached the accept state.
	StatusAccepted Status = "accepted"
	// StatusRejected means the run ended on rejection: under the eager mode
	// the first reject state dequeued, under the exhaustive mode every
	// branch halted without accepting.
	StatusRejected Status = "rejected"
	// StatusTimedOut means the depth bound was reached without acceptance.
	// It is a first-class result, not an error; callers may retry with a
	// larger bound.
	StatusTimedOut Status = "timed_out"
)

// Display returns the human form of the status for reports.
func (s Status) Display() string {
	switch s {
	case StatusAccepted:
		return "Accepted"
	case StatusRejected:
		return "Rejected"
	case StatusTimedOut:
		return "Timed Out"
	}
	return string(s)
}

// Result packages everything one bounded simulation produced. The trace
// holds every configuration in the exact order it was dequeued, including
// partial work when the run timed out.
type Result struct {
	Machine string `json:"machine"`
	Input   string `json:"input"`

	Status Status `json:"status"`

	// Trace is the full ordered explored-configuration list.
	Trace []Configuration `json:"trace"`

	// Levels is the number of BFS levels actually processed. One level is
	// one simulated machine step across all live branches.
	Levels int `json:"levels"`

	// Explored equals len(Trace), kept explicit for serialized results.
	Explored int `json:"explored"`

	MaxDepth int             `json:"max_depth"`
	Mode     TerminationMode `json:"mode"`

	// Metric names the branching formula used for Branching.
	Metric    MetricKind `json:"metric"`
	Branching float64    `json:"branching"`

	Elapsed time.Duration `json:"elapsed"`
}

// Run is a persisted simulation: a Result plus its storage identity.
type Run struct {
	ID        string    `json:"id"`
	Result    Result    `json:"result"`
	CreatedAt time.Time `json:"created_at"`

	// Sealed carries the opaque encrypted payload written by storage
	// middleware. Empty for plaintext runs; when set, Result holds only
	// the fields the envelope chooses to expose.
	Sealed string `json:"sealed,omitempty"`
}
