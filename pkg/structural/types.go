package structural

import (
	"time"

	"github.com/evalctl/causeway/pkg/causal"
)

// Result contains the outcome of a structural validation pass. Every
// field is always populated; a Result is never partially computed.
type Result struct {
	Valid             bool              // True when the causal logic is complete and ordered
	OrderViolations   []causal.Edge     // Forward edges that go backward in category order
	CompletePaths     [][]string        // Node ID sequences spanning all five categories in order
	MissingCategories []causal.Category // Categories with no instantiated node, in causal order
	Suggestions       []string          // Deterministic rule-based remediation text
	CheckedAt         time.Time         // When validation was performed
}

// Options bounds the complete-path search so it stays polynomial for
// realistic plan sizes. Zero values select the defaults.
type Options struct {
	MaxPathLength int // Maximum nodes on a single path (default 64)
	MaxPaths      int // Maximum complete paths to enumerate (default 256)
}

const (
	defaultMaxPathLength = 64
	defaultMaxPaths      = 256
)

func (o Options) withDefaults() Options {
	if o.MaxPathLength <= 0 {
		o.MaxPathLength = defaultMaxPathLength
	}
	if o.MaxPaths <= 0 {
		o.MaxPaths = defaultMaxPaths
	}
	return o
}
