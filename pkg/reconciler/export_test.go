package reconciler

import (
	"time"

	"github.com/chainsafe/bridge-reconciler/pkg/transfer"
)

// WithPlanFunc replaces the transition planner.
func WithPlanFunc(f func(t *transfer.Transfer, obs Observation, now time.Time, newHash HashFunc) *transfer.Patch) Option {
	return func(e *Engine) { e.plan = f }
}
