package billing

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RenewalJobArgs is the payload of the periodic subscription renewal sweep.
// The job carries no parameters; uniqueness keeps a single sweep queued at a
// time even when several instances schedule it.
type RenewalJobArgs struct{}

// Kind returns the River job kind used to register and dispatch the renewal
// worker.
func (args RenewalJobArgs) Kind() string { return "SubscriptionRenewalJob" }

// InsertOpts keeps at most one renewal sweep in any non-final state.
func (args RenewalJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
