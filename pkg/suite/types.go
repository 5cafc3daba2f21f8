package suite

import "time"

// Status is the outcome of a single suite step
type Status string

const (
	StatusPassed  Status = "passed"
	StatusWarning Status = "warning"
	StatusFailed  Status = "failed"
)

// Metric is one observable measurement emitted by a suite step,
// compared against its configured threshold.
type Metric struct {
	Name      string
	Threshold float64
	Value     float64
	Passed    bool
	Timestamp time.Time
}

// StepResult records the outcome of one step in the fixed sequence
type StepResult struct {
	Name     string
	Status   Status
	Message  string
	Duration time.Duration
}

// Report aggregates the whole suite execution. Passed is false as soon
// as any hard check fails; benchmark breaches surface as Warnings
// unless benchmarks are configured fatal.
type Report struct {
	RunID     string
	Passed    bool
	Steps     []StepResult
	Metrics   []Metric
	Warnings  []string
	StartedAt time.Time
	Duration  time.Duration
}

// Step names, in execution order
const (
	StepReadiness        = "readiness"
	StepStructural       = "structural_validation"
	StepConnectionMatrix = "connection_matrix"
	StepBenchmarks       = "benchmarks"
)
