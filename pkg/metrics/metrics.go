package metrics

// DefaultBuckets is the shared set of latency histogram buckets, in seconds.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals
