package contracts

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// MonitorRefreshJobArgs is the payload of the periodic monitor refresh job.
// The job carries no parameters; uniqueness keeps a single refresh queued at
// a time even when several instances schedule it.
type MonitorRefreshJobArgs struct{}

// Kind returns the River job kind used to register and dispatch the monitor
// refresh worker.
func (args MonitorRefreshJobArgs) Kind() string { return "MonitorRefreshJob" }

// InsertOpts keeps at most one refresh in any non-final state.
func (args MonitorRefreshJobArgs) InsertOpts() river.InsertOpts {
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
