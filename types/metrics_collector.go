package types

// MetricsCollector defines methods for recording splitting metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The engine runs once per scenario, so all methods are called from the
// caller's goroutine, but implementations must still be safe for concurrent
// use when several scenarios are constructed in parallel.
type MetricsCollector interface {
	// RecordSplitDuration records the time taken by one split run.
	//
	// Parameters:
	//   - option: Split option ("random", "stratified", "advanced")
	//   - seconds: Time taken in seconds
	RecordSplitDuration(option string, seconds float64)

	// RecordSplitAttempt records a split attempt (success or failure).
	//
	// Parameters:
	//   - option: Split option
	//   - success: true if the split succeeded
	RecordSplitAttempt(option string, success bool)

	// RecordPartnerCount sets the number of partners in the scenario (gauge metric).
	RecordPartnerCount(count int)

	// RecordPartnerSamples sets the final train volume of one partner (gauge metric).
	//
	// Parameters:
	//   - partnerID: Partner identifier (0..K-1)
	//   - samples: Allocated train sample count
	RecordPartnerSamples(partnerID, samples int)

	// RecordResizeFactor sets the final resize factor applied by an advanced split.
	RecordResizeFactor(factor float64)
}
