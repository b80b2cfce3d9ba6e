package reconcile

import "fmt"

// Result tracks counts and non-fatal errors from one reconciliation call.
// Unmatched records and skipped malformed records never fail the call;
// they are reported here for observability.
type Result struct {
	Matched   int
	Unmatched int
	// Skipped counts malformed provider records (missing name key)
	// dropped instead of aborting the batch.
	Skipped int
	Errors  []string
}

// AddErrorf records a formatted non-fatal error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable one-liner for logging.
func (r Result) Summary() string {
	return fmt.Sprintf("matched=%d unmatched=%d skipped=%d errors=%d",
		r.Matched, r.Unmatched, r.Skipped, len(r.Errors))
}
